package main

import (
	"log"
	"net"
	"os"

	"google.golang.org/grpc"

	pb "github.com/FrancescoBalzan/pymdp/gen/agentpb"
	"github.com/FrancescoBalzan/pymdp/internal/service"
)

// #region main
func main() {
	addr := envOr("AGENTD_ADDR", ":50051")

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatalf("failed to listen on %s: %v", addr, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterAgentServiceServer(grpcServer, service.NewAgentServer())

	log.Printf("[AGENTD] serving on %s", addr)
	if err := grpcServer.Serve(lis); err != nil {
		log.Fatalf("serve: %v", err)
	}
}
// #endregion main

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers
