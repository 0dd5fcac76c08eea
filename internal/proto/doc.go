// Package proto holds the wire types and gRPC bindings for the pswmgr
// services declared in proto/pswmgr.proto.
//
// The bindings are maintained by hand and exchange messages through a
// registered JSON codec (content-subtype "json") instead of generated
// protobuf marshaling. Field numbers and names in proto/pswmgr.proto
// remain the contract; this package must stay in sync with it.
package proto
