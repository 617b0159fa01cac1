/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package grpcx translates guard errors into gRPC status errors.
//
// The interceptor mirrors the httpx middleware for the gRPC transport:
// classified errors become a status with the mapper-resolved code and the
// guard message, carrying a google.rpc.ErrorInfo detail so clients can
// read the machine classification without parsing the message.
package grpcx

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	gstatus "google.golang.org/grpc/status"

	"dirpx.dev/guard"
	"dirpx.dev/guard/apis"
	"dirpx.dev/guard/mapper"
)

// Domain identifies this library in google.rpc.ErrorInfo details.
const Domain = "dirpx.dev/guard"

// UnaryServerInterceptor returns an interceptor that converts guard errors
// returned by handlers into gRPC status errors. The mapper resolves the
// status code from the error's code and failing check; a nil m uses the
// library default. Errors that are not guard errors pass through
// unchanged.
func UnaryServerInterceptor(m apis.Mapper) grpc.UnaryServerInterceptor {
	if m == nil {
		m = mapper.Default()
	}

	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		resp, err := handler(ctx, req)
		if err == nil {
			return resp, nil
		}

		var ge *guard.Error
		if !errors.As(err, &ge) {
			return nil, err
		}

		st := m.Status(ge.Code, ge.Check)
		base := gstatus.New(st.GRPC, ge.Message)

		with, derr := base.WithDetails(errorInfo(ge))
		if derr != nil {
			// Message and code still describe the failure.
			return nil, base.Err()
		}
		return nil, with.Err()
	}
}

// errorInfo projects a guard error into google.rpc.ErrorInfo. The reason
// is the failing check's ident in the SCREAMING_SNAKE form ErrorInfo
// requires, e.g. "argument.null" -> "ARGUMENT_NULL".
func errorInfo(ge *guard.Error) *errdetails.ErrorInfo {
	md := map[string]string{"code": string(ge.Code)}
	if ge.Name != "" {
		md["name"] = ge.Name
	}
	return &errdetails.ErrorInfo{
		Reason:   reasonFromCheck(string(ge.Check)),
		Domain:   Domain,
		Metadata: md,
	}
}

func reasonFromCheck(ident string) string {
	if ident == "" {
		return "UNCLASSIFIED"
	}
	return strings.ToUpper(strings.ReplaceAll(ident, ".", "_"))
}

// ErrorInfoFromError pulls the ErrorInfo detail out of a gRPC error, if
// present. Useful in tests and client code.
func ErrorInfoFromError(err error) (*errdetails.ErrorInfo, bool) {
	if err == nil {
		return nil, false
	}
	st, ok := gstatus.FromError(err)
	if !ok {
		return nil, false
	}
	for _, d := range st.Details() {
		if info, ok := d.(*errdetails.ErrorInfo); ok {
			return info, true
		}
	}
	return nil, false
}
