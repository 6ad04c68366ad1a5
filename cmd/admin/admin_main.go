package main

import (
	accapp "GameAdmin/internal/account/app"
	accif "GameAdmin/internal/account/interfaces"
	bapp "GameAdmin/internal/building/app"
	"GameAdmin/internal/building/infra/events"
	"GameAdmin/internal/building/infra/seed"
	bif "GameAdmin/internal/building/interfaces"
	panelif "GameAdmin/internal/panel/interfaces"
	panelhandler "GameAdmin/internal/panel/interfaces/handler"
	"GameAdmin/internal/shared/logs"
	"GameAdmin/internal/shared/security"
	"GameAdmin/internal/shared/serverconfig"
	transportgrpc "GameAdmin/internal/shared/transport/grpc"
	transporthttp "GameAdmin/internal/shared/transport/http"
	"GameAdmin/internal/shared/transport/http/middleware"
	"GameAdmin/internal/shared/transport/ws"
	"GameAdmin/internal/shared/utils"
	"GameAdmin/modules/kit/logx"
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	serverconfig.Load("", logs.SetLevel)
	cfg := serverconfig.Conf
	if err := logs.Init("admin", cfg.Log); err != nil {
		panic(err)
	}
	defer logs.Sync()
	if err := serverconfig.Validate(); err != nil {
		logs.Fatal("invalid config", zap.Error(err))
	}
	logs.Info("conf loaded",
		zap.String("storage", cfg.Storage.Driver),
		zap.Int("http_port", cfg.HTTPServer.Port),
		zap.Int("grpc_port", cfg.GRPCServer.Port),
	)
	log := logx.NewZapLogger(logs.Logger())

	store, err := openStorage(cfg, logs.Logger())
	if err != nil {
		logs.Fatal("open storage failed", zap.Error(err))
	}
	defer store.Close()

	ids, err := utils.NewSnowflake(cfg.Snowflake.NodeID)
	if err != nil {
		logs.Fatal("init snowflake failed", zap.Error(err))
	}

	issuer := security.NewIssuer(cfg.Security.TokenTTL)
	userService := accapp.NewUserService(store.users, store.history, store.last, issuer,
		security.HashPassword, security.CheckPassword)
	limiter := middleware.NewIPLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	account := accif.New(userService, log, limiter)

	wsRouter := ws.NewRouter(log)
	hub := ws.NewHub(wsRouter, account.Authenticator(), log, cfg.HTTPServer.AllowOrigins...)
	configService := bapp.NewConfigService(store.configs, ids, events.NewWsPublisher(hub, log))

	seedCtx, cancelSeed := context.WithTimeout(context.Background(), 30*time.Second)
	if err = seed.Run(seedCtx, configService, cfg.Seed.File, log); err != nil {
		logs.Error("seed configurations failed", zap.Error(err))
	}
	cancelSeed()

	building := bif.New(configService, account.Authenticator(), hub, log)
	building.WsRegister(wsRouter)
	panel := panelif.New(userService, configService, account.Authenticator(), panelhandler.Options{
		CookieSecure: cfg.Panel.CookieSecure,
		TokenTTL:     cfg.Security.TokenTTL,
		Limiter:      limiter,
	}, log)

	if !logs.Logger().Core().Enabled(zap.DebugLevel) {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	httpAddr := fmt.Sprintf("%s:%d", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	httpServer := transporthttp.NewHttpServer(httpAddr, engine, log, cfg.HTTPServer.AllowOrigins...)
	httpServer.Register(account, building, panel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 2)
	go func() {
		logs.Info("admin http server started", zap.String("addr", httpAddr))
		if err := httpServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http serve failed: %w", err)
		}
	}()

	var grpcServer *transportgrpc.Server
	if cfg.GRPCServer.Port > 0 {
		grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPCServer.Host, cfg.GRPCServer.Port)
		lis, err := net.Listen("tcp", grpcAddr)
		if err != nil {
			logs.Fatal("listen grpc failed", zap.Error(err))
		}
		grpcServer = transportgrpc.NewServer(log)
		grpcServer.SetServing("", true)
		go func() {
			logs.Info("admin grpc health server started", zap.String("addr", grpcAddr))
			if err := grpcServer.Serve(lis); err != nil {
				errCh <- fmt.Errorf("grpc serve failed: %w", err)
			}
		}()
	}

	select {
	case <-ctx.Done():
		logs.Info("收到退出信号，准备优雅退出")
	case err := <-errCh:
		logs.Error("服务异常退出", zap.Error(err))
	}

	if grpcServer != nil {
		grpcServer.SetServing("", false)
	}
	hub.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logs.Error("http shutdown failed", zap.Error(err))
	}
	if grpcServer != nil {
		grpcServer.Stop()
	}
}
