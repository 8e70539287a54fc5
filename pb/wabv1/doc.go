// Package wabv1 contains the Go bindings for the wab.v1 RPC surface defined
// in wab.proto.
//
// The bindings are maintained by hand instead of generated with protoc, so
// the build needs no protobuf toolchain. Message structs carry the standard
// protobuf struct tags and implement the legacy message interface; the
// protobuf runtime derives wire-compatible descriptors from the tags, and the
// gRPC proto codec handles them transparently. The service descriptors and
// stubs follow the shape of protoc-gen-go-grpc output, so swapping in
// generated code later is a drop-in change.
//
// When editing: wab.proto is the contract. Keep field numbers and names in
// messages.go in sync with it, and never reuse a removed field number.
package wabv1
