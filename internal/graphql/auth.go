package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/fitstore/fitstore-go/internal/middleware"
	"github.com/fitstore/fitstore-go/internal/model"
)

func (r *Resolver) resolveMe(p gql.ResolveParams) (interface{}, error) {
	user, ok := middleware.UserFromContext(p.Context)
	if !ok {
		return nil, nil
	}
	return user, nil
}

func (r *Resolver) resolveUsers(p gql.ResolveParams) (interface{}, error) {
	users, err := r.Auth.Users(p.Context, currentUser(p))
	if err != nil {
		return nil, wrapErr(err)
	}
	return users, nil
}

func (r *Resolver) resolveSignup(p gql.ResolveParams) (interface{}, error) {
	user, token, err := r.Auth.Signup(p.Context,
		stringArg(p, "name"), stringArg(p, "email"), stringArg(p, "password"))
	if err != nil {
		return nil, wrapErr(err)
	}
	setSessionCookie(p.Context, token)
	return user, nil
}

func (r *Resolver) resolveSignin(p gql.ResolveParams) (interface{}, error) {
	user, token, err := r.Auth.Signin(p.Context,
		stringArg(p, "email"), stringArg(p, "password"))
	if err != nil {
		return nil, wrapErr(err)
	}
	setSessionCookie(p.Context, token)
	return user, nil
}

func (r *Resolver) resolveSignout(p gql.ResolveParams) (interface{}, error) {
	clearSessionCookie(p.Context)
	return message("Goodbye!"), nil
}

func (r *Resolver) resolveRequestReset(p gql.ResolveParams) (interface{}, error) {
	if err := r.Auth.RequestReset(p.Context, stringArg(p, "email")); err != nil {
		return nil, wrapErr(err)
	}
	return message("Check your email for a reset link"), nil
}

func (r *Resolver) resolveResetPassword(p gql.ResolveParams) (interface{}, error) {
	user, token, err := r.Auth.ResetPassword(p.Context,
		stringArg(p, "resetToken"), stringArg(p, "password"), stringArg(p, "confirmPassword"))
	if err != nil {
		return nil, wrapErr(err)
	}
	setSessionCookie(p.Context, token)
	return user, nil
}

func (r *Resolver) resolveUpdatePermissions(p gql.ResolveParams) (interface{}, error) {
	user, err := r.Auth.UpdatePermissions(p.Context, currentUser(p),
		stringArg(p, "userId"), stringListArg(p, "permissions"))
	if err != nil {
		return nil, wrapErr(err)
	}
	return user, nil
}

// currentUser returns the authenticated user or nil for anonymous
// requests; the services treat nil as unauthenticated.
func currentUser(p gql.ResolveParams) *model.User {
	user, _ := middleware.UserFromContext(p.Context)
	return user
}

func message(text string) map[string]interface{} {
	return map[string]interface{}{"message": text}
}

func stringArg(p gql.ResolveParams, name string) string {
	s, _ := p.Args[name].(string)
	return s
}

func stringListArg(p gql.ResolveParams, name string) []string {
	raw, _ := p.Args[name].([]interface{})
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func optionalStringArg(p gql.ResolveParams, name string) *string {
	if v, ok := p.Args[name]; ok {
		if s, ok := v.(string); ok {
			return &s
		}
	}
	return nil
}

func optionalIntArg(p gql.ResolveParams, name string) *int64 {
	if v, ok := p.Args[name]; ok {
		if i, ok := v.(int); ok {
			n := int64(i)
			return &n
		}
	}
	return nil
}

func intArg(p gql.ResolveParams, name string) int {
	i, _ := p.Args[name].(int)
	return i
}
