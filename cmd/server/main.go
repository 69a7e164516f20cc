/*
 * Copyright (c) 2025, WSO2 LLC. (http://www.wso2.com).
 *
 * WSO2 LLC. licenses this file to you under the Apache License,
 * Version 2.0 (the "License"); you may not use this file except
 * in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing,
 * software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY
 * KIND, either express or implied.  See the License for the
 * specific language governing permissions and limitations
 * under the License.
 */

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	syncModel "github.com/csdept/dept-portal/internal/sync/model"
	syncProvider "github.com/csdept/dept-portal/internal/sync/provider"
	"github.com/csdept/dept-portal/internal/system/bootstrap"
	"github.com/csdept/dept-portal/internal/system/config"
	"github.com/csdept/dept-portal/internal/system/constants"
	sysContext "github.com/csdept/dept-portal/internal/system/context"
	"github.com/csdept/dept-portal/internal/system/log"
	"github.com/csdept/dept-portal/internal/system/managers"
	"github.com/csdept/dept-portal/internal/system/schedulers"
	"github.com/csdept/dept-portal/internal/system/workers"
)

const shutdownTimeout = 15 * time.Second

func main() {
	portalHome, syncOnStart := parseFlags()

	cfg, err := bootstrap.LoadRuntime(portalHome)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start the portal: %v\n", err)
		os.Exit(1)
	}
	logger := log.GetLogger()

	db, err := bootstrap.OpenDatabase(portalHome, true)
	if err != nil {
		logger.Fatal("Failed to initialize the database", log.Error(err))
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	syncEngine := syncProvider.NewSyncProvider(db, *cfg)

	// Background sync runs one job at a time behind a queue of one.
	worker := workers.NewSyncWorker(syncEngine.GetSyncService())
	worker.Start(ctx)
	if cfg.Sync.Schedule.Enabled {
		scheduler, err := schedulers.NewWeeklySyncScheduler(cfg.Sync.Schedule, worker)
		if err != nil {
			logger.Fatal("Invalid sync schedule", log.Error(err))
		}
		scheduler.Start(ctx)
	}
	if syncOnStart {
		worker.Enqueue(workers.SyncJob{Entity: syncModel.EntityAll, Trigger: workers.TriggerStartup})
	}

	serverAddr := fmt.Sprintf("%s:%d", cfg.Addr.Host, cfg.Addr.Port)
	handler := sysContext.TraceMiddleware(enableCORS(cfg.Auth, initMultiplexer(db, *cfg, syncEngine)))
	ln, err := net.Listen("tcp", serverAddr)
	if err != nil {
		logger.Fatal("Failed to start listener", log.String("addr", serverAddr), log.Error(err))
	}

	server := &http.Server{
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		logger.Info("Shutting down the portal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", log.Error(err))
		}
	}()

	logger.Info("Department portal started", log.String("addr", serverAddr))
	if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("Failed to serve requests", log.Error(err))
	}
	<-worker.Done()
}

// initMultiplexer initializes the HTTP multiplexer and registers the services.
func initMultiplexer(db *sql.DB, cfg config.Config, sync syncProvider.SyncProviderInterface) *http.ServeMux {

	mux := http.NewServeMux()
	serviceManager := managers.NewServiceManager(mux, db, cfg, sync)

	// Register the services.
	if err := serviceManager.RegisterServices(constants.ApiBasePath); err != nil {
		log.GetLogger().Error("Failed to register the services", log.Error(err))
	}
	return mux
}

// enableCORS allows the configured origins. An empty list allows any origin without credentials.
func enableCORS(auth config.AuthConfig, next http.Handler) http.Handler {
	allowed := make(map[string]bool, len(auth.CORSAllowedOrigins))
	for _, origin := range auth.CORSAllowedOrigins {
		allowed[origin] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case len(allowed) == 0:
			w.Header().Set("Access-Control-Allow-Origin", "*")
		case allowed[origin]:
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, "+constants.TraceIDHeader)
		w.Header().Set("Access-Control-Expose-Headers", "X-Total-Count, "+constants.TraceIDHeader)
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func parseFlags() (string, bool) {

	projectHomeFlag := flag.String("portalHome", "", "Path to the portal home directory")
	syncOnStart := flag.Bool("syncOnStart", false, "Run a full sync right after startup")
	flag.Parse()

	if *projectHomeFlag != "" {
		return *projectHomeFlag, *syncOnStart
	}
	// If no command line argument is provided, use the current working directory.
	dir, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to get current working directory: %v\n", err)
		os.Exit(1)
	}
	return dir, *syncOnStart
}
