package main

import (
	"fmt"
	"net"

	"mission-stats/src/config"
	datasource "mission-stats/src/data_source"
	pb "mission-stats/src/grpc_control"
	"mission-stats/src/interfaces"
	"mission-stats/src/logger"
	"mission-stats/src/missions"
	"mission-stats/src/server"

	"google.golang.org/grpc"
)

// -----------------------------------------------------------------------------

// startServers starts the HTTP API and, when a port is configured, the gRPC
// control server. The returned gRPC server is nil when disabled.
func startServers(
	srv *server.APIServer,
	multiSource *datasource.MultiSourceManager,
	registry *missions.Registry,
	conf *config.Config,
	appLogger *logger.Logger,
	networkManager interfaces.INetworkManager,
) *grpc.Server {

	// 1. HTTP API + WebSocket
	go func() {
		if err := srv.Start(); err != nil {
			appLogger.Error("Server failed: %v", err)
		}
	}()

	// 2. gRPC Control Server
	if conf.GrpcPort == 0 {
		appLogger.Info("gRPC control server disabled")
		return nil
	}

	addr := fmt.Sprintf("%s:%d", conf.GrpcHost, conf.GrpcPort)
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		appLogger.Critical("failed to listen for gRPC: %v", err)
	}

	grpcLogger := logger.NewLogger(conf, "ControlService")
	controlService := pb.NewControlService(conf, multiSource, registry, srv.Window, grpcLogger, networkManager)
	grpcServer, _ := pb.NewGRPCServer(controlService)

	go func() {
		appLogger.Info("Starting gRPC Control Server on %s", addr)
		if err := grpcServer.Serve(lis); err != nil {
			appLogger.Error("gRPC server stopped: %v", err)
		}
	}()
	return grpcServer
}
