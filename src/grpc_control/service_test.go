package grpc_control

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	"mission-stats/src/config"
	datasource "mission-stats/src/data_source"
	"mission-stats/src/data_source/static"
	"mission-stats/src/dates"
	"mission-stats/src/interfaces"
	"mission-stats/src/logger"
	"mission-stats/src/missions"
	"mission-stats/src/models"
	"mission-stats/src/network"
)

func startControl(t *testing.T) (*ControlClient, *grpc.ClientConn) {
	t.Helper()

	log := logger.NewLoggerWithWriter(nil, "test", io.Discard)
	staticSrc, err := static.NewStaticSource()
	require.NoError(t, err)

	cfg := &config.Config{MConfig: &models.MConfig{
		Name:     "mission-stats",
		Window:   models.MWindowConfig{DefaultDays: 3, MaxDays: 10},
		Missions: missions.Builtin(),
	}}
	now := time.Date(2025, time.June, 10, 12, 0, 0, 0, dates.ReferenceLocation)
	svc := NewControlService(
		cfg,
		datasource.NewMultiSourceManager([]interfaces.IStatsSource{staticSrc}, log),
		missions.NewRegistry(cfg.Missions),
		dates.NewWindowGenerator(dates.FixedClock(now), dates.ReferenceLocation),
		log,
		network.NewAsyncNetworkManager(cfg.MConfig, log),
	)

	lis := bufconn.Listen(1 << 20)
	srv, _ := NewGRPCServer(svc)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewControlClient(conn), conn
}

func mustStruct(t *testing.T, m map[string]interface{}) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(m)
	require.NoError(t, err)
	return s
}

func stringList(v *structpb.Value) []string {
	var out []string
	for _, item := range v.GetListValue().GetValues() {
		out = append(out, item.GetStringValue())
	}
	return out
}

func TestDateWindow(t *testing.T) {
	client, _ := startControl(t)
	ctx := context.Background()

	resp, err := client.DateWindow(ctx, mustStruct(t, map[string]interface{}{"anchor": "2025-06-10", "days": 3}))
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-08", "2025-06-09", "2025-06-10"}, stringList(resp.Fields["dates"]))

	// Defaults to today and the configured day count
	resp, err = client.DateWindow(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-08", "2025-06-09", "2025-06-10"}, stringList(resp.Fields["dates"]))

	// Capped at max_days
	resp, err = client.DateWindow(ctx, mustStruct(t, map[string]interface{}{"days": 50}))
	require.NoError(t, err)
	assert.Len(t, stringList(resp.Fields["dates"]), 10)
}

func TestDateWindow_InvalidArguments(t *testing.T) {
	client, _ := startControl(t)

	for _, req := range []map[string]interface{}{
		{"days": 0},
		{"days": 1.5},
		{"anchor": "not a date"},
	} {
		_, err := client.DateWindow(context.Background(), mustStruct(t, req))
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "%v", req)
	}
}

func TestListMissions(t *testing.T) {
	client, _ := startControl(t)

	resp, err := client.ListMissions(context.Background(), nil)
	require.NoError(t, err)
	list := resp.Fields["missions"].GetListValue().GetValues()
	require.Len(t, list, 3)
	first := list[0].GetStructValue().GetFields()
	assert.Equal(t, "dance-film", first["slug"].GetStringValue())
	assert.Equal(t, "/dance-film/video/:videoId", first["chart_route"].GetStringValue())
}

func TestSourceManagement(t *testing.T) {
	client, _ := startControl(t)
	ctx := context.Background()

	resp, err := client.ListSources(ctx, nil)
	require.NoError(t, err)
	require.Len(t, resp.Fields["sources"].GetListValue().GetValues(), 1)

	_, err = client.AddSource(ctx, mustStruct(t, map[string]interface{}{"type": "static"}))
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	_, err = client.AddSource(ctx, mustStruct(t, map[string]interface{}{"type": "ftp"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.AddSource(ctx, mustStruct(t, map[string]interface{}{"type": "api"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.RemoveSource(ctx, mustStruct(t, map[string]interface{}{"name": static.SourceName}))
	require.NoError(t, err)

	_, err = client.RemoveSource(ctx, mustStruct(t, map[string]interface{}{"name": static.SourceName}))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.AddSource(ctx, mustStruct(t, map[string]interface{}{"type": "static"}))
	require.NoError(t, err)
}

func TestAddSource_APIMirrors(t *testing.T) {
	client, _ := startControl(t)
	ctx := context.Background()

	_, err := client.AddSource(ctx, mustStruct(t, map[string]interface{}{"type": "api", "base_url": "http://primary.example", "name": "primary"}))
	require.NoError(t, err)
	_, err = client.AddSource(ctx, mustStruct(t, map[string]interface{}{"type": "api", "base_url": "http://mirror.example:8080"}))
	require.NoError(t, err)
	_, err = client.AddSource(ctx, mustStruct(t, map[string]interface{}{"type": "api", "base_url": "http://other.example", "name": "primary"}))
	assert.Equal(t, codes.AlreadyExists, status.Code(err))

	resp, err := client.ListSources(ctx, nil)
	require.NoError(t, err)
	var names []string
	for _, v := range resp.Fields["sources"].GetListValue().GetValues() {
		names = append(names, v.GetStructValue().GetFields()["name"].GetStringValue())
	}
	assert.Equal(t, []string{static.SourceName, "primary", "stats-api@mirror.example:8080"}, names)
}

func TestHealthService(t *testing.T) {
	_, conn := startControl(t)

	resp, err := healthpb.NewHealthClient(conn).Check(context.Background(), &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)
}
