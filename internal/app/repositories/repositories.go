package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	RecruiterRepository  *RecruiterRepository
	NewsletterRepository *NewsletterRepository
	UserRepository       *UserRepository
	RoleRepository       *RoleRepository
	TokenRepository      *TokenRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		RecruiterRepository:  NewRecruiterRepository(db),
		NewsletterRepository: NewNewsletterRepository(db),
		UserRepository:       NewUserRepository(db),
		RoleRepository:       NewRoleRepository(db),
		TokenRepository:      NewTokenRepository(db),
	}
}
