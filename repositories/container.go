package repositories

import (
	"github.com/pelayanandata/portal-go/db"
	"gorm.io/gorm"
)

type Repos struct {
	User        UserRepo
	DataRequest DataRequestRepo
	Skm         SkmRepo
	Content     ContentRepo
	Audit       AuditRepo

	gdb *gorm.DB
}

func New() *Repos {
	return &Repos{
		User:        &DBUserRepo{},
		DataRequest: &DBDataRequestRepo{},
		Skm:         &DBSkmRepo{},
		Content:     &DBContentRepo{},
		Audit:       &DBAuditRepo{},
		gdb:         db.DB,
	}
}

// Transaction runs fn against transaction-scoped repositories, so a guard
// check, the resulting mutation, and the audit write commit or roll back as
// one unit. Repos built by hand (tests) carry no connection and run fn
// against themselves unchanged.
func (r *Repos) Transaction(fn func(*Repos) error) error {
	if r.gdb == nil {
		return fn(r)
	}
	return r.gdb.Transaction(func(tx *gorm.DB) error {
		return fn(&Repos{
			User:        &DBUserRepo{DB: tx},
			DataRequest: &DBDataRequestRepo{DB: tx},
			Skm:         &DBSkmRepo{DB: tx},
			Content:     &DBContentRepo{DB: tx},
			Audit:       &DBAuditRepo{DB: tx},
			gdb:         tx,
		})
	})
}
