package proto

import (
	"context"

	"google.golang.org/grpc"
)

const (
	PasswordManager_ListPasswords_FullMethodName  = "/pswmgr.PasswordManager/ListPasswords"
	PasswordManager_AddPassword_FullMethodName    = "/pswmgr.PasswordManager/AddPassword"
	PasswordManager_DeletePassword_FullMethodName = "/pswmgr.PasswordManager/DeletePassword"
	PasswordManager_ModifyPassword_FullMethodName = "/pswmgr.PasswordManager/ModifyPassword"
)

// PasswordManagerClient is the client API for the PasswordManager service.
type PasswordManagerClient interface {
	ListPasswords(ctx context.Context, in *SimpleRequest, opts ...grpc.CallOption) (*PasswordList, error)
	AddPassword(ctx context.Context, in *PasswordEntry, opts ...grpc.CallOption) (*SimpleReply, error)
	DeletePassword(ctx context.Context, in *PasswordEntry, opts ...grpc.CallOption) (*SimpleReply, error)
	ModifyPassword(ctx context.Context, in *PasswordEntry, opts ...grpc.CallOption) (*SimpleReply, error)
}

type passwordManagerClient struct {
	cc grpc.ClientConnInterface
}

func NewPasswordManagerClient(cc grpc.ClientConnInterface) PasswordManagerClient {
	return &passwordManagerClient{cc}
}

func (c *passwordManagerClient) ListPasswords(ctx context.Context, in *SimpleRequest, opts ...grpc.CallOption) (*PasswordList, error) {
	out := new(PasswordList)
	err := c.cc.Invoke(ctx, PasswordManager_ListPasswords_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *passwordManagerClient) AddPassword(ctx context.Context, in *PasswordEntry, opts ...grpc.CallOption) (*SimpleReply, error) {
	out := new(SimpleReply)
	err := c.cc.Invoke(ctx, PasswordManager_AddPassword_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *passwordManagerClient) DeletePassword(ctx context.Context, in *PasswordEntry, opts ...grpc.CallOption) (*SimpleReply, error) {
	out := new(SimpleReply)
	err := c.cc.Invoke(ctx, PasswordManager_DeletePassword_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *passwordManagerClient) ModifyPassword(ctx context.Context, in *PasswordEntry, opts ...grpc.CallOption) (*SimpleReply, error) {
	out := new(SimpleReply)
	err := c.cc.Invoke(ctx, PasswordManager_ModifyPassword_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PasswordManagerServer is the server API for the PasswordManager service.
// All implementations must embed UnimplementedPasswordManagerServer.
type PasswordManagerServer interface {
	ListPasswords(context.Context, *SimpleRequest) (*PasswordList, error)
	AddPassword(context.Context, *PasswordEntry) (*SimpleReply, error)
	DeletePassword(context.Context, *PasswordEntry) (*SimpleReply, error)
	ModifyPassword(context.Context, *PasswordEntry) (*SimpleReply, error)
	mustEmbedUnimplementedPasswordManagerServer()
}

// UnimplementedPasswordManagerServer must be embedded for forward
// compatible implementations.
type UnimplementedPasswordManagerServer struct{}

func (UnimplementedPasswordManagerServer) ListPasswords(context.Context, *SimpleRequest) (*PasswordList, error) {
	return nil, errUnimplemented("ListPasswords")
}
func (UnimplementedPasswordManagerServer) AddPassword(context.Context, *PasswordEntry) (*SimpleReply, error) {
	return nil, errUnimplemented("AddPassword")
}
func (UnimplementedPasswordManagerServer) DeletePassword(context.Context, *PasswordEntry) (*SimpleReply, error) {
	return nil, errUnimplemented("DeletePassword")
}
func (UnimplementedPasswordManagerServer) ModifyPassword(context.Context, *PasswordEntry) (*SimpleReply, error) {
	return nil, errUnimplemented("ModifyPassword")
}
func (UnimplementedPasswordManagerServer) mustEmbedUnimplementedPasswordManagerServer() {}

func RegisterPasswordManagerServer(s grpc.ServiceRegistrar, srv PasswordManagerServer) {
	s.RegisterService(&PasswordManager_ServiceDesc, srv)
}

func _PasswordManager_ListPasswords_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(SimpleRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PasswordManagerServer).ListPasswords(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PasswordManager_ListPasswords_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PasswordManagerServer).ListPasswords(ctx, req.(*SimpleRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PasswordManager_AddPassword_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PasswordEntry)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PasswordManagerServer).AddPassword(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PasswordManager_AddPassword_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PasswordManagerServer).AddPassword(ctx, req.(*PasswordEntry))
	}
	return interceptor(ctx, in, info, handler)
}

func _PasswordManager_DeletePassword_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PasswordEntry)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PasswordManagerServer).DeletePassword(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PasswordManager_DeletePassword_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PasswordManagerServer).DeletePassword(ctx, req.(*PasswordEntry))
	}
	return interceptor(ctx, in, info, handler)
}

func _PasswordManager_ModifyPassword_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(PasswordEntry)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PasswordManagerServer).ModifyPassword(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PasswordManager_ModifyPassword_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PasswordManagerServer).ModifyPassword(ctx, req.(*PasswordEntry))
	}
	return interceptor(ctx, in, info, handler)
}

// PasswordManager_ServiceDesc is the grpc.ServiceDesc for the
// PasswordManager service. It should only be used with grpc.RegisterService.
var PasswordManager_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pswmgr.PasswordManager",
	HandlerType: (*PasswordManagerServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ListPasswords",
			Handler:    _PasswordManager_ListPasswords_Handler,
		},
		{
			MethodName: "AddPassword",
			Handler:    _PasswordManager_AddPassword_Handler,
		},
		{
			MethodName: "DeletePassword",
			Handler:    _PasswordManager_DeletePassword_Handler,
		},
		{
			MethodName: "ModifyPassword",
			Handler:    _PasswordManager_ModifyPassword_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/pswmgr.proto",
}
