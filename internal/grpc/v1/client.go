package v1

import (
	"context"

	"google.golang.org/grpc"

	"github.com/Totarae/SecondBrain/internal/model"
)

// BrainServiceClient клиент BrainService поверх JSON-кодека.
type BrainServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewBrainServiceClient(cc grpc.ClientConnInterface) *BrainServiceClient {
	return &BrainServiceClient{cc: cc}
}

func (c *BrainServiceClient) invoke(ctx context.Context, method string, in, out any, opts ...grpc.CallOption) error {
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	return c.cc.Invoke(ctx, FullMethod(method), in, out, opts...)
}

func (c *BrainServiceClient) Signup(ctx context.Context, in *model.SignupRequest, opts ...grpc.CallOption) (*model.SignupResponse, error) {
	out := new(model.SignupResponse)
	if err := c.invoke(ctx, "Signup", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BrainServiceClient) Signin(ctx context.Context, in *model.SigninRequest, opts ...grpc.CallOption) (*model.SigninResponse, error) {
	out := new(model.SigninResponse)
	if err := c.invoke(ctx, "Signin", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BrainServiceClient) AddContent(ctx context.Context, in *model.AddContentRequest, opts ...grpc.CallOption) (*model.AddContentResponse, error) {
	out := new(model.AddContentResponse)
	if err := c.invoke(ctx, "AddContent", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BrainServiceClient) ListContent(ctx context.Context, in *ListContentRequest, opts ...grpc.CallOption) (*model.ContentListResponse, error) {
	out := new(model.ContentListResponse)
	if err := c.invoke(ctx, "ListContent", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BrainServiceClient) DeleteContent(ctx context.Context, in *model.DeleteContentRequest, opts ...grpc.CallOption) (*model.MessageResponse, error) {
	out := new(model.MessageResponse)
	if err := c.invoke(ctx, "DeleteContent", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BrainServiceClient) ShareBrain(ctx context.Context, in *model.ShareRequest, opts ...grpc.CallOption) (*ShareBrainResponse, error) {
	out := new(ShareBrainResponse)
	if err := c.invoke(ctx, "ShareBrain", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *BrainServiceClient) ResolveShare(ctx context.Context, in *ResolveShareRequest, opts ...grpc.CallOption) (*model.SharedBrainResponse, error) {
	out := new(model.SharedBrainResponse)
	if err := c.invoke(ctx, "ResolveShare", in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
