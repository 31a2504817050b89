package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	userRepo := newPgxUserRepository(dbPool)
	companyRepo := newPgxCompanyRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	categoryRepo := newPgxCategoryRepository(dbPool)
	clientRepo := newPgxClientRepository(dbPool)
	transactionRepo := newPgxTransactionRepository(dbPool)
	reportingRepo := newReportingRepository(dbPool)

	return portsrepo.RepositoryProvider{
		UserRepo:        userRepo,
		CompanyRepo:     companyRepo,
		AccountRepo:     accountRepo,
		CategoryRepo:    categoryRepo,
		ClientRepo:      clientRepo,
		TransactionRepo: transactionRepo,
		ReportingRepo:   reportingRepo,
	}
}
