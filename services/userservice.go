package services

import (
	"context"
	"errors"

	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/model"
	"github.com/Andhyonoki/perpustakaan-umum-pare-pare/store"
)

var ErrUserNotFound = errors.New("user not found")

// GetUserByEmail scans the users subtree for a matching account. The store
// has no query language, so the lookup is a full fetch plus a client-side
// scan, the same way every other read in this app works.
func GetUserByEmail(ctx context.Context, db store.TreeStore, email string) (model.User, error) {
	var users map[string]model.UserNode
	if err := db.Get(ctx, "users", &users); err != nil {
		return model.User{}, err
	}
	for uid, node := range users {
		if node.Email == email {
			user := node.User
			user.UID = uid
			return user, nil
		}
	}
	return model.User{}, ErrUserNotFound
}

// UserExist reports whether an account with this email already exists.
func UserExist(ctx context.Context, db store.TreeStore, email string) (bool, error) {
	_, err := GetUserByEmail(ctx, db, email)
	if errors.Is(err, ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetUserByID reads the account fields at users/{uid}.
func GetUserByID(ctx context.Context, db store.TreeStore, uid string) (model.User, error) {
	var user model.User
	if err := db.Get(ctx, "users/"+uid, &user); err != nil {
		return model.User{}, err
	}
	if user.Email == "" && user.Nama == "" {
		return model.User{}, ErrUserNotFound
	}
	user.UID = uid
	return user, nil
}

// GetUserRole reads just the role leaf for post-login routing. An absent role
// comes back as the empty string; the caller treats that as a normal negative
// outcome, not an error.
func GetUserRole(ctx context.Context, db store.TreeStore, uid string) (string, error) {
	var role string
	if err := db.Get(ctx, "users/"+uid+"/role", &role); err != nil {
		return "", err
	}
	return role, nil
}
