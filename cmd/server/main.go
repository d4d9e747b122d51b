/*
 * Copyright 2025 tomoncle.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomoncle/storefront"
	"github.com/tomoncle/storefront/config"
	"github.com/tomoncle/storefront/utils"
)

func main() {
	configPath := flag.String("config", utils.EnvDefaultString("CONFIG_FILE", "configs/config.yaml"), "path to the YAML configuration file")
	flag.Parse()

	log := utils.NewLogger("MAIN")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc, err := storefront.NewService(ctx, cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to start service")
	}
	defer func() {
		if err := svc.Close(); err != nil {
			log.WithError(err).Error("failed to close database")
		}
	}()

	if err := svc.Run(ctx); err != nil {
		log.WithError(err).Error("service stopped with error")
		return
	}
	log.Info("service stopped")
}
