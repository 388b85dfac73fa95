package grpc_control

import (
	"context"
	"fmt"
	"net/url"

	"mission-stats/src/config"
	datasource "mission-stats/src/data_source"
	"mission-stats/src/data_source/api"
	"mission-stats/src/data_source/static"
	"mission-stats/src/dates"
	"mission-stats/src/helpers"
	"mission-stats/src/interfaces"
	"mission-stats/src/logger"
	"mission-stats/src/missions"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// ControlService implements ControlServer
type ControlService struct {
	UnimplementedControlServer
	Config         *config.Config
	DataSource     *datasource.MultiSourceManager
	Missions       *missions.Registry
	Window         *dates.WindowGenerator
	Logger         *logger.Logger
	NetworkManager interfaces.INetworkManager
}

// NewControlService creates a new instance of ControlService
func NewControlService(
	cfg *config.Config,
	ds *datasource.MultiSourceManager,
	registry *missions.Registry,
	window *dates.WindowGenerator,
	log *logger.Logger,
	netMgr interfaces.INetworkManager,
) *ControlService {
	if window == nil {
		window = dates.NewWindowGenerator(nil, nil)
	}
	return &ControlService{
		Config:         cfg,
		DataSource:     ds,
		Missions:       registry,
		Window:         window,
		Logger:         log,
		NetworkManager: netMgr,
	}
}

// -----------------------------------------------------------------------------

// NewGRPCServer builds a server with the control and health services registered
func NewGRPCServer(svc *ControlService, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	srv := grpc.NewServer(opts...)
	RegisterControlServer(srv, svc)

	healthSrv := health.NewServer()
	healthSrv.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, healthSrv)
	return srv, healthSrv
}

// -----------------------------------------------------------------------------

// DateWindow takes {anchor, days} and returns {dates: [...]}
func (s *ControlService) DateWindow(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	anchor := fields["anchor"].GetStringValue()

	days := s.Config.Window.DefaultDays
	if v, ok := fields["days"]; ok {
		n := v.GetNumberValue()
		if n != float64(int(n)) {
			return nil, status.Errorf(codes.InvalidArgument, "days must be a whole number, got %v", n)
		}
		days = int(n)
	}
	if s.Config.Window.MaxDays > 0 && days > s.Config.Window.MaxDays {
		days = s.Config.Window.MaxDays
	}

	window, err := s.Window.GenerateWindow(anchor, days)
	if err != nil {
		return nil, toStatus(err)
	}

	list := make([]interface{}, len(window))
	for i, d := range window {
		list[i] = d
	}
	return newStruct(map[string]interface{}{
		"anchor": anchor,
		"days":   days,
		"dates":  list,
	})
}

// -----------------------------------------------------------------------------

// ListMissions returns the configured missions
func (s *ControlService) ListMissions(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var list []interface{}
	for _, m := range s.Missions.All() {
		list = append(list, map[string]interface{}{
			"slug":        m.Slug,
			"title":       m.Title,
			"list_route":  m.ListRoute,
			"chart_route": m.ChartRoute,
			"window_days": m.WindowDays,
		})
	}
	return newStruct(map[string]interface{}{"missions": list})
}

// -----------------------------------------------------------------------------

// ListSources returns the stats sources in priority order
func (s *ControlService) ListSources(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	var list []interface{}
	for i, src := range s.DataSource.GetAllSources() {
		list = append(list, map[string]interface{}{
			"name":     src.Name(),
			"priority": i,
		})
	}
	return newStruct(map[string]interface{}{"sources": list})
}

// -----------------------------------------------------------------------------

// AddSource appends a source: {"type": "static"} or {"type": "api", "base_url": "...", "name": "..."}
func (s *ControlService) AddSource(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	fields := req.GetFields()
	kind := fields["type"].GetStringValue()

	var newSource interfaces.IStatsSource
	switch kind {
	case "static":
		src, err := static.NewStaticSource()
		if err != nil {
			return nil, status.Errorf(codes.Internal, "load static data: %v", err)
		}
		newSource = src
	case "api":
		baseURL := fields["base_url"].GetStringValue()
		if baseURL == "" {
			baseURL = s.Config.StatsAPI.BaseURL
		}
		if baseURL == "" {
			return nil, status.Error(codes.InvalidArgument, "base_url is required")
		}
		if s.NetworkManager == nil {
			return nil, status.Error(codes.FailedPrecondition, "no network manager configured")
		}
		name := fields["name"].GetStringValue()
		if name == "" && baseURL != s.Config.StatsAPI.BaseURL {
			name = mirrorName(baseURL)
		}
		cfg := *s.Config.MConfig
		cfg.StatsAPI.BaseURL = baseURL
		newSource = api.NewStatsAPISource(&cfg, s.NetworkManager, s.Logger).WithName(name)
	default:
		return nil, status.Errorf(codes.InvalidArgument, "unsupported source type: %q", kind)
	}

	if _, err := s.DataSource.GetSource(newSource.Name()); err == nil {
		return nil, status.Errorf(codes.AlreadyExists, "source %s already exists", newSource.Name())
	}
	if err := s.DataSource.AddSource(newSource); err != nil {
		return nil, status.Errorf(codes.AlreadyExists, "%v", err)
	}

	s.Logger.Info("gRPC: added source %s", newSource.Name())
	return newStruct(map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Added source %s", newSource.Name()),
	})
}

// -----------------------------------------------------------------------------

// RemoveSource drops a source by {"name": ...}
func (s *ControlService) RemoveSource(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name := req.GetFields()["name"].GetStringValue()
	if name == "" {
		return nil, status.Error(codes.InvalidArgument, "name is required")
	}
	if err := s.DataSource.RemoveSource(name); err != nil {
		return nil, status.Errorf(codes.NotFound, "%v", err)
	}

	s.Logger.Info("gRPC: removed source %s", name)
	return newStruct(map[string]interface{}{
		"success": true,
		"message": fmt.Sprintf("Removed source %s", name),
	})
}

// -----------------------------------------------------------------------------

func newStruct(m map[string]interface{}) (*structpb.Struct, error) {
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return out, nil
}

// -----------------------------------------------------------------------------

func toStatus(err error) error {
	if helpers.IsClientError(err) {
		return status.Error(codes.InvalidArgument, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// -----------------------------------------------------------------------------

// mirrorName names an extra API source after its host, e.g. stats-api@mirror:8080
func mirrorName(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host == "" {
		return api.SourceName + "@" + baseURL
	}
	return api.SourceName + "@" + u.Host
}
