package main

import (
	"context"
	"flag"
	"log"
	"net"

	"google.golang.org/grpc"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"freyr/api/grpcserver"
	pb "freyr/api/pb"
	"freyr/config"
	"freyr/domain/auction"
	"freyr/domain/periods"
	"freyr/infra/kafka"
	"freyr/infra/ledger"
	"freyr/infra/outbox"
	"freyr/infra/sequence"
	"freyr/infra/wal"
	"freyr/jobs/broadcaster"
	"freyr/service"

	"github.com/nats-io/nats.go"
)

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	logger, err := newLogger()
	if err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Sync()

	// ---------------- Journal ----------------

	journal, err := wal.Open(wal.Config{
		Dir:         cfg.Dirs.WAL,
		SegmentSize: 2 * 1024 * 1024,
	})
	if err != nil {
		logger.Fatal("journal init failed", zap.Error(err))
	}
	defer journal.Close()

	// ---------------- Sequencers ----------------

	orderSeq := sequence.New(0)
	txnSeq := sequence.New(0)
	eventSeq := sequence.New(0)

	// ---------------- Ledger ----------------

	lgr, err := ledger.Open(cfg.Dirs.Ledger, txnSeq)
	if err != nil {
		logger.Fatal("ledger init failed", zap.Error(err))
	}
	defer lgr.Close()

	// ---------------- Outbox ----------------

	box, err := outbox.Open(cfg.Dirs.Outbox, eventSeq)
	if err != nil {
		logger.Fatal("outbox init failed", zap.Error(err))
	}
	defer box.Close()

	// ---------------- Domain ----------------

	registry := periods.New(auction.Period(cfg.Periods.First), cfg.Periods.OpenCount)
	params := auction.Params{
		DefaultMargin:        cfg.Clearing.DefaultMargin,
		DefaultClearingPrice: cfg.Clearing.DefaultPrice,
		SellerSurplusRatio:   cfg.Clearing.SurplusRatio,
	}

	// ---------------- Service ----------------

	svc := service.NewClearingService(
		registry,
		lgr,
		outbox.NewPublisher(box),
		params,
		journal,
		orderSeq,
		logger,
	)

	// ---------------- JOURNAL REPLAY ----------------

	if err := service.ReplayJournal(cfg.Dirs.WAL, svc); err != nil {
		logger.Fatal("journal replay failed", zap.Error(err))
	}

	// ---------------- Background Jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var nc *nats.Conn
	if cfg.NATS.URL != "" {
		nc, err = nats.Connect(cfg.NATS.URL)
		if err != nil {
			logger.Warn("nats unavailable, live fanout disabled", zap.Error(err))
			nc = nil
		} else {
			defer nc.Close()
		}
	}

	bc, err := broadcaster.New(
		box,
		cfg.Kafka.Brokers,
		broadcaster.Topics{
			OrderBooks: cfg.Kafka.BooksTopic,
			Summaries:  cfg.Kafka.SummariesTopic,
		},
		nc,
		cfg.Clearing.CycleInterval/4,
		logger,
	)
	if err != nil {
		logger.Fatal("broadcaster init failed", zap.Error(err))
	}
	defer bc.Close()
	go bc.Run(ctx)

	consumer := kafka.NewConsumer(
		cfg.Kafka.Brokers,
		cfg.Kafka.OrdersTopic,
		cfg.Kafka.Group,
		svc,
		logger,
	)
	defer consumer.Close()
	go consumer.Run(ctx)

	svc.StartCycleJob(ctx, cfg.Clearing.CycleInterval, registry.Advance)

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Fatal("listen failed", zap.Error(err))
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterClearingAPIServer(grpcSrv, grpcserver.NewServer(svc, logger))

	logger.Info("freyr clearing engine running", zap.String("addr", cfg.Server.GRPCAddr))

	if err := grpcSrv.Serve(lis); err != nil {
		logger.Fatal("grpc server exited", zap.Error(err))
	}
}
