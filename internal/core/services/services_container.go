package services

import (
	portsrepo "github.com/pjfinancas/financas_backend/internal/core/ports/repositories"
	portssvc "github.com/pjfinancas/financas_backend/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, notifier portssvc.Notifier) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo)
	container.Company = NewCompanyService(repos.CompanyRepo, repos.CategoryRepo)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)
	container.Client = NewClientService(repos.ClientRepo)
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.CompanyRepo, repos.ReportingRepo, notifier)
	container.Dashboard = NewDashboardService(repos.ReportingRepo, repos.TransactionRepo)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.UserSvcFacade        = (*UserService)(nil)
	_ portssvc.CompanySvcFacade     = (*CompanyService)(nil)
	_ portssvc.AccountSvcFacade     = (*AccountService)(nil)
	_ portssvc.CategorySvcFacade    = (*CategoryService)(nil)
	_ portssvc.ClientSvcFacade      = (*ClientService)(nil)
	_ portssvc.TransactionSvcFacade = (*TransactionService)(nil)
	_ portssvc.DashboardService     = (*DashboardService)(nil)
)
