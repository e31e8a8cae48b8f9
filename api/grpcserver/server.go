package grpcserver

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go.uber.org/zap"

	pb "freyr/api/pb"
	"freyr/domain/auction"
	"freyr/service"
)

// Server adapts ClearingService to gRPC.
type Server struct {
	pb.UnimplementedClearingAPIServer
	svc *service.ClearingService
	log *zap.Logger
}

func NewServer(svc *service.ClearingService, log *zap.Logger) *Server {
	return &Server{svc: svc, log: log}
}

// -------------------- Commands --------------------

func (s *Server) SubmitOrder(
	ctx context.Context,
	req *pb.SubmitOrderRequest,
) (*pb.SubmitOrderResponse, error) {
	o := auction.Order{
		Participant: req.Participant,
		Period:      auction.Period(req.Period),
		Quantity:    req.Quantity,
	}
	if req.HasLimit {
		limit := req.LimitPrice
		o.LimitPrice = &limit
	}

	seq, err := s.svc.Submit(o)
	if err != nil {
		if errors.Is(err, service.ErrPeriodClosed) || errors.Is(err, service.ErrZeroQuantity) {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		return nil, status.Error(codes.Internal, err.Error())
	}

	s.log.Debug("order submitted",
		zap.String("participant", req.Participant),
		zap.Int64("period", req.Period),
		zap.Float64("qty", req.Quantity),
		zap.Uint64("seq", seq))

	return &pb.SubmitOrderResponse{
		Status: "ok",
		SeqId:  seq,
	}, nil
}

// -------------------- Queries --------------------

func (s *Server) GetOrderBook(
	ctx context.Context,
	req *pb.OrderBookRequest,
) (*pb.OrderBookResponse, error) {
	book, ok := s.svc.LatestBook(auction.Period(req.Period))
	if !ok {
		return nil, status.Errorf(codes.NotFound, "no order book for period %d", req.Period)
	}

	resp := &pb.OrderBookResponse{
		Period: int64(book.Period),
		Bids:   make([]*pb.BookEntry, 0, len(book.Bids)),
		Asks:   make([]*pb.BookEntry, 0, len(book.Asks)),
	}
	if book.ClearingPrice != nil {
		resp.HasClearingPrice = true
		resp.ClearingPrice = *book.ClearingPrice
	}
	for _, b := range book.Bids {
		resp.Bids = append(resp.Bids, toEntry(b))
	}
	for _, a := range book.Asks {
		resp.Asks = append(resp.Asks, toEntry(a))
	}
	return resp, nil
}

// -------------------- Converters --------------------

func toEntry(e auction.BookEntry) *pb.BookEntry {
	out := &pb.BookEntry{Quantity: e.Quantity}
	if e.LimitPrice != nil {
		out.HasLimit = true
		out.LimitPrice = *e.LimitPrice
	}
	return out
}
