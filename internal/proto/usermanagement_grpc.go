package proto

import (
	"context"

	"google.golang.org/grpc"
)

const (
	UserManagement_CreateUser_FullMethodName = "/pswmgr.UserManagement/CreateUser"
)

// UserManagementClient is the client API for the UserManagement service.
type UserManagementClient interface {
	CreateUser(ctx context.Context, in *UserCreationRequest, opts ...grpc.CallOption) (*UserCreationReply, error)
}

type userManagementClient struct {
	cc grpc.ClientConnInterface
}

func NewUserManagementClient(cc grpc.ClientConnInterface) UserManagementClient {
	return &userManagementClient{cc}
}

func (c *userManagementClient) CreateUser(ctx context.Context, in *UserCreationRequest, opts ...grpc.CallOption) (*UserCreationReply, error) {
	out := new(UserCreationReply)
	err := c.cc.Invoke(ctx, UserManagement_CreateUser_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UserManagementServer is the server API for the UserManagement service.
// All implementations must embed UnimplementedUserManagementServer.
type UserManagementServer interface {
	CreateUser(context.Context, *UserCreationRequest) (*UserCreationReply, error)
	mustEmbedUnimplementedUserManagementServer()
}

// UnimplementedUserManagementServer must be embedded for forward
// compatible implementations.
type UnimplementedUserManagementServer struct{}

func (UnimplementedUserManagementServer) CreateUser(context.Context, *UserCreationRequest) (*UserCreationReply, error) {
	return nil, errUnimplemented("CreateUser")
}
func (UnimplementedUserManagementServer) mustEmbedUnimplementedUserManagementServer() {}

func RegisterUserManagementServer(s grpc.ServiceRegistrar, srv UserManagementServer) {
	s.RegisterService(&UserManagement_ServiceDesc, srv)
}

func _UserManagement_CreateUser_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(UserCreationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(UserManagementServer).CreateUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: UserManagement_CreateUser_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(UserManagementServer).CreateUser(ctx, req.(*UserCreationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// UserManagement_ServiceDesc is the grpc.ServiceDesc for the
// UserManagement service. It should only be used with grpc.RegisterService.
var UserManagement_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "pswmgr.UserManagement",
	HandlerType: (*UserManagementServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateUser",
			Handler:    _UserManagement_CreateUser_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/pswmgr.proto",
}
