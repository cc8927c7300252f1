package grpcclient

import (
	"context"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/example/facerec/internal/imaging"
	"github.com/example/facerec/internal/logging"
	"github.com/example/facerec/internal/trainer"
	proto "github.com/example/facerec/proto/trainer"
)

// DialTrainer returns a ready-to-use client for the external trainer service.
func DialTrainer(ctx context.Context, addr string, logger *zap.Logger) (trainer.Client, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_trainer", "", err)
		logger.Error("failed to dial trainer", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	client := proto.NewTrainerClient(conn)
	return &grpcTrainer{client: client, logger: logger}, conn, nil
}

type grpcTrainer struct {
	client proto.TrainerClient
	logger *zap.Logger
}

// Train runs a full training round on the trainer service. The call blocks
// for the duration of the training; the caller's context is passed through
// untouched, no deadline is imposed here.
func (g *grpcTrainer) Train(ctx context.Context, dataset *trainer.Dataset) (*trainer.TrainedModel, error) {
	req := &proto.TrainRequest{
		LabelColumn: dataset.LabelColumn,
		Examples:    make([]*proto.LabeledImage, 0, len(dataset.Examples)),
	}
	for _, example := range dataset.Examples {
		req.Examples = append(req.Examples, &proto.LabeledImage{
			Label: example.Label,
			Image: example.Image,
		})
	}

	resp, err := g.client.Train(ctx, req)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.train", "", err)
		g.logger.Error("trainer call failed", zap.Error(wrapped), zap.Int("examples", len(dataset.Examples)))
		return nil, wrapped
	}
	return &trainer.TrainedModel{
		Classes:  resp.GetClasses(),
		Artifact: resp.GetModel(),
		CoreML:   resp.GetCoremlModel(),
	}, nil
}

func (g *grpcTrainer) Predict(ctx context.Context, artifact []byte, image *imaging.PixelBuffer) ([]string, error) {
	resp, err := g.client.Predict(ctx, &proto.PredictRequest{
		Model: artifact,
		Image: &proto.PixelBuffer{
			Width:    int32(image.Width),
			Height:   int32(image.Height),
			Channels: int32(image.Channels),
			Data:     image.Data,
		},
	})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.predict", "", err)
		g.logger.Error("predict call failed", zap.Error(wrapped))
		return nil, wrapped
	}
	return resp.GetLabels(), nil
}
