package v1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/Totarae/SecondBrain/internal/model"
)

// ServiceName полное имя gRPC-сервиса.
const ServiceName = "secondbrain.v1.BrainService"

// ListContentRequest фильтр списка по платформе, пустой тип означает все.
type ListContentRequest struct {
	Type string `json:"type"`
}

// ResolveShareRequest запрос публичного просмотра.
type ResolveShareRequest struct {
	Hash string `json:"hash" validate:"required"`
}

// ShareBrainResponse содержит hash, если ссылка выдана, иначе сообщение.
type ShareBrainResponse struct {
	Hash    string `json:"hash,omitempty"`
	Message string `json:"message,omitempty"`
}

// BrainServiceServer серверная часть secondbrain.v1.BrainService.
type BrainServiceServer interface {
	Signup(context.Context, *model.SignupRequest) (*model.SignupResponse, error)
	Signin(context.Context, *model.SigninRequest) (*model.SigninResponse, error)
	AddContent(context.Context, *model.AddContentRequest) (*model.AddContentResponse, error)
	ListContent(context.Context, *ListContentRequest) (*model.ContentListResponse, error)
	DeleteContent(context.Context, *model.DeleteContentRequest) (*model.MessageResponse, error)
	ShareBrain(context.Context, *model.ShareRequest) (*ShareBrainResponse, error)
	ResolveShare(context.Context, *ResolveShareRequest) (*model.SharedBrainResponse, error)
}

// BrainServiceDesc описание сервиса для grpc.Server.RegisterService.
var BrainServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*BrainServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("Signup", BrainServiceServer.Signup),
		unary("Signin", BrainServiceServer.Signin),
		unary("AddContent", BrainServiceServer.AddContent),
		unary("ListContent", BrainServiceServer.ListContent),
		unary("DeleteContent", BrainServiceServer.DeleteContent),
		unary("ShareBrain", BrainServiceServer.ShareBrain),
		unary("ResolveShare", BrainServiceServer.ResolveShare),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "secondbrain/v1/brain",
}

// RegisterBrainServiceServer регистрирует реализацию на сервере.
func RegisterBrainServiceServer(s grpc.ServiceRegistrar, srv BrainServiceServer) {
	s.RegisterService(&BrainServiceDesc, srv)
}

// FullMethod возвращает полное имя метода вида /secondbrain.v1.BrainService/Signup.
func FullMethod(name string) string {
	return "/" + ServiceName + "/" + name
}

func unary[Req, Resp any](name string, call func(BrainServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(BrainServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: FullMethod(name)}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(BrainServiceServer), ctx, req.(*Req))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}
