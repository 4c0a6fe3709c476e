package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ToGRPCError converts err into a status error for a handler to return.
// Status errors pass through untouched. Metadata rides along as a
// structpb.Struct detail when it can be represented as one.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var e *Error
	if !errors.As(err, &e) {
		return status.Error(GetCode(err).GRPCCode(), err.Error())
	}

	st := status.New(e.Code.GRPCCode(), e.Message)
	if len(e.Meta) == 0 {
		return st.Err()
	}
	details, convErr := structpb.NewStruct(structMeta(e.Meta))
	if convErr != nil {
		return st.Err()
	}
	if withDetails, detailErr := st.WithDetails(details); detailErr == nil {
		st = withDetails
	}
	return st.Err()
}

// FromGRPCError is the client-side inverse of ToGRPCError. Errors that are
// not status errors are returned as is.
func FromGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	if st.Code() == codes.OK {
		return nil
	}

	e := New(codeFromGRPC(st.Code()), st.Message())
	for _, detail := range st.Details() {
		if meta, ok := detail.(*structpb.Struct); ok {
			e.Meta = meta.AsMap()
			break
		}
	}
	return e
}

// structMeta rewrites the typed slices and maps this package produces into
// the []interface{} / map[string]interface{} shapes structpb accepts.
func structMeta(meta map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(meta))
	for k, v := range meta {
		switch typed := v.(type) {
		case []string:
			out[k] = stringList(typed)
		case map[string][]string:
			fields := make(map[string]interface{}, len(typed))
			for field, msgs := range typed {
				fields[field] = stringList(msgs)
			}
			out[k] = fields
		default:
			out[k] = v
		}
	}
	return out
}

func stringList(values []string) []interface{} {
	list := make([]interface{}, len(values))
	for i, v := range values {
		list[i] = v
	}
	return list
}
