package repository

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"bookingtrack/apperr"
	"bookingtrack/models"
)

type PostgresUserRepo struct {
	DB *sql.DB
}

func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{DB: db}
}

// CreateUser creates a user after validating email uniqueness and hashing password
func (r *PostgresUserRepo) CreateUser(user *models.User) error {
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" || strings.TrimSpace(user.Role) == "" {
		return apperr.Validationf("name, email and role are required")
	}
	if user.Password == "" {
		return apperr.Validationf("password cannot be empty")
	}

	existingUser, err := r.GetUserByEmail(user.Email)
	if err != nil {
		return err
	}
	if existingUser != nil {
		return apperr.Conflictf("email %q already exists", user.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Storage(err)
	}
	user.Password = string(hashed)

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	user.IsActive = true

	_, err = r.DB.Exec(`
		INSERT INTO users (id, name, email, password, role, is_active, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, user.ID, user.Name, user.Email, user.Password, user.Role, user.IsActive, user.CreatedAt, user.CreatedBy)
	if err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// GetUserByEmail fetches user by email
func (r *PostgresUserRepo) GetUserByEmail(email string) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(`
		SELECT id, name, email, password, role, is_active, created_at, created_by
		FROM users
		WHERE email=$1
	`, email).Scan(&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.IsActive, &user.CreatedAt, &user.CreatedBy)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, apperr.Storage(err)
	}
	return user, nil
}

func (r *PostgresUserRepo) GetUsers() ([]*models.User, error) {
	rows, err := r.DB.Query(`
		SELECT id, name, email, role, is_active, created_at, created_by
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	defer rows.Close()

	var result []*models.User
	for rows.Next() {
		var u models.User
		err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.IsActive, &u.CreatedAt, &u.CreatedBy)
		if err != nil {
			return nil, apperr.Storage(err)
		}
		result = append(result, &u)
	}
	if err := rows.Err(); err != nil {
		return nil, apperr.Storage(err)
	}
	return result, nil
}

func (r *PostgresUserRepo) GetUserByID(id string) (*models.User, error) {
	user := &models.User{}
	err := r.DB.QueryRow(`
		SELECT id, name, email, role, is_active, created_at, created_by
		FROM users
		WHERE id=$1
	`, id).Scan(&user.ID, &user.Name, &user.Email, &user.Role, &user.IsActive, &user.CreatedAt, &user.CreatedBy)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFoundf("user %s not found", id)
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return user, nil
}

func (r *PostgresUserRepo) UpdateUser(user *models.User) error {
	if strings.TrimSpace(user.Name) == "" || strings.TrimSpace(user.Email) == "" || strings.TrimSpace(user.Role) == "" {
		return apperr.Validationf("name, email and role are required")
	}

	set := "name=$1, email=$2, role=$3, is_active=$4"
	args := []interface{}{user.Name, user.Email, user.Role, user.IsActive}
	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return apperr.Storage(err)
		}
		set += ", password=$5"
		args = append(args, string(hashed))
	}
	args = append(args, user.ID)

	query := "UPDATE users SET " + set + " WHERE id=$" + strconv.Itoa(len(args))
	res, err := r.DB.Exec(query, args...)
	if err != nil {
		return apperr.Storage(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if affected == 0 {
		return apperr.NotFoundf("user %s not found", user.ID)
	}
	return nil
}

func (r *PostgresUserRepo) DeleteUser(id string) error {
	res, err := r.DB.Exec(`DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return apperr.Storage(err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return apperr.Storage(err)
	}
	if affected == 0 {
		return apperr.NotFoundf("user %s not found", id)
	}
	return nil
}
