package repo

import (
	"github.com/mkarpov/tollgate/internal/pg"
	driverrepo "github.com/mkarpov/tollgate/internal/repo/driver-repo"
	roadrepo "github.com/mkarpov/tollgate/internal/repo/road-repo"
	routerepo "github.com/mkarpov/tollgate/internal/repo/route-repo"
	transactionrepo "github.com/mkarpov/tollgate/internal/repo/transaction-repo"
	userrepo "github.com/mkarpov/tollgate/internal/repo/user-repo"
	vehiclerepo "github.com/mkarpov/tollgate/internal/repo/vehicle-repo"
)

type Repositories struct {
	Users        *userrepo.Repository
	Vehicles     *vehiclerepo.Repository
	Drivers      *driverrepo.Repository
	Transactions *transactionrepo.Repository
	Routes       *routerepo.Repository
	Roads        *roadrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		Users:        userrepo.New(conn),
		Vehicles:     vehiclerepo.New(conn, txManager),
		Drivers:      driverrepo.New(conn),
		Transactions: transactionrepo.New(conn),
		Routes:       routerepo.New(conn, txManager),
		Roads:        roadrepo.New(conn),
	}
}
