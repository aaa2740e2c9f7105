// Package repomanager vends repository implementations for a given backing
// store and exposes the schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/wpsaas/wpcloud/internal/dbx"
	"github.com/wpsaas/wpcloud/internal/server/checkout"
	"github.com/wpsaas/wpcloud/internal/server/refreshtokens"
	"github.com/wpsaas/wpcloud/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Deployments(db dbx.DBTX) checkout.Repository
}
