package postgres

import (
	"context"
	"database/sql"
	"file-processor/internal/core/port"
)

type sqlUnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

func NewUnitOfWork(db *sql.DB) port.UnitOfWork {
	return &sqlUnitOfWork{db: db}
}

func (u *sqlUnitOfWork) querier() SQLQuerier {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *sqlUnitOfWork) UploadRepo() port.UploadRepository {
	return NewSqlUploadRepository(u.querier())
}

func (u *sqlUnitOfWork) UserRepo() port.UserRepository {
	return NewSqlUserRepository(u.querier())
}

func (u *sqlUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	if u.tx != nil {
		// already inside a transaction
		return fn(u)
	}

	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	uowWithTx := &sqlUnitOfWork{db: u.db, tx: tx}

	if err := fn(uowWithTx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
