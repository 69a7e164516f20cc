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
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	adminModel "github.com/csdept/dept-portal/internal/admin_user/model"
	adminProvider "github.com/csdept/dept-portal/internal/admin_user/provider"
	syncModel "github.com/csdept/dept-portal/internal/sync/model"
	syncProvider "github.com/csdept/dept-portal/internal/sync/provider"
	"github.com/csdept/dept-portal/internal/system/authn"
	"github.com/csdept/dept-portal/internal/system/bootstrap"
	sysContext "github.com/csdept/dept-portal/internal/system/context"
	"github.com/csdept/dept-portal/internal/system/utils"
)

const cliInitiator = "cli"

var readPasswordFunc = term.ReadPassword // mockable

// Registrar creates admin accounts.
type Registrar interface {
	Register(ctx context.Context, creds adminModel.Credentials, initiator string) (*adminModel.AdminUser, error)
}

// Syncer runs one reconciliation.
type Syncer interface {
	Sync(ctx context.Context, entity string) (*syncModel.SyncResult, error)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var portalHome string
	root := &cobra.Command{
		Use:           "portal-admin",
		Short:         "Administrative tasks for the department portal",
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&portalHome, "portalHome", ".", "Path to the portal home directory")

	root.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply the database schema",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if _, err := bootstrap.LoadRuntime(portalHome); err != nil {
					return err
				}
				if _, err := bootstrap.OpenDatabase(portalHome, true); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Schema applied.")
				return nil
			},
		},
		newAddUserCmd(func() (Registrar, error) {
			cfg, err := bootstrap.LoadRuntime(portalHome)
			if err != nil {
				return nil, err
			}
			db, err := bootstrap.OpenDatabase(portalHome, false)
			if err != nil {
				return nil, err
			}
			return adminProvider.NewAdminUserProvider(db, authn.NewTokenManager(cfg.Auth)).GetAdminUserService(), nil
		}),
		newSyncCmd(func() (Syncer, error) {
			cfg, err := bootstrap.LoadRuntime(portalHome)
			if err != nil {
				return nil, err
			}
			db, err := bootstrap.OpenDatabase(portalHome, false)
			if err != nil {
				return nil, err
			}
			return syncProvider.NewSyncProvider(db, *cfg).GetSyncService(), nil
		}),
	)
	return root
}

// newAddUserCmd registers an admin. The password is prompted without echo.
func newAddUserCmd(open func() (Registrar, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "adduser USERNAME",
		Short: "Create an admin account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), "Enter password: ")
			pwd, err := readPasswordFunc(int(syscall.Stdin))
			fmt.Fprintln(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			creds := adminModel.Credentials{Username: args[0], Password: string(pwd)}
			if err := utils.ValidateStruct(&creds); err != nil {
				return err
			}

			registrar, err := open()
			if err != nil {
				return err
			}
			user, err := registrar.Register(cmd.Context(), creds, cliInitiator)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Admin %s created.\n", user.Username)
			return nil
		},
	}
}

// newSyncCmd runs a reconciliation in the foreground. It shares the advisory lock with the server.
func newSyncCmd(open func() (Syncer, error)) *cobra.Command {
	entities := []string{syncModel.EntityAll, syncModel.EntityTeachers, syncModel.EntitySubjects,
		syncModel.EntityStudGroups, syncModel.EntityCurriculumUnits}
	return &cobra.Command{
		Use:       "sync [" + strings.Join(entities, "|") + "]",
		Short:     "Synchronize the mirror with BRS",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: entities,
		RunE: func(cmd *cobra.Command, args []string) error {
			entity := syncModel.EntityAll
			if len(args) == 1 {
				entity = args[0]
			}
			syncer, err := open()
			if err != nil {
				return err
			}
			ctx := sysContext.WithTraceID(cmd.Context(), sysContext.GenerateTraceID())
			result, err := syncer.Sync(ctx, entity)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}
}
