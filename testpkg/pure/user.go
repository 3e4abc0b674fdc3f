package pure

import (
	"time"

	log "github.com/golang/glog"
)

// now is a variable so tests can pin the clock.
var now = time.Now

// User is a registered account.
type User struct {
	ID       int64
	Username string
}

// RegisterUser creates a user named username. The id is the registration
// time in Unix milliseconds, so callers should only rely on it being positive.
func RegisterUser(username string) (*User, error) {
	if username == "" {
		log.V(2).Infof("[RegisterUser] rejected empty username")
		return nil, &ValidationError{Field: "username", Message: "Username is required."}
	}

	user := &User{ID: now().UnixMilli(), Username: username}
	log.V(2).Infof("[RegisterUser] registered %q with id %d", user.Username, user.ID)
	return user, nil
}
