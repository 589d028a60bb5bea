package graphql

import (
	gql "github.com/graphql-go/graphql"

	"github.com/fitstore/fitstore-go/internal/model"
	"github.com/fitstore/fitstore-go/internal/service"
)

// Resolver wires the GraphQL fields to the services.
type Resolver struct {
	Auth  *service.AuthService
	Items *service.ItemService
	Users service.UserStore
}

// NewSchema builds the executable schema around the resolver.
func NewSchema(r *Resolver) (gql.Schema, error) {
	permissionEnum := gql.NewEnum(gql.EnumConfig{
		Name:   "Permission",
		Values: permissionValues(),
	})

	userType := gql.NewObject(gql.ObjectConfig{
		Name: "User",
		Fields: gql.Fields{
			"id":          &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"name":        &gql.Field{Type: gql.NewNonNull(gql.String)},
			"email":       &gql.Field{Type: gql.NewNonNull(gql.String)},
			"permissions": &gql.Field{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(permissionEnum)))},
		},
	})

	itemType := gql.NewObject(gql.ObjectConfig{
		Name: "Item",
		Fields: gql.Fields{
			"id":          &gql.Field{Type: gql.NewNonNull(gql.ID)},
			"title":       &gql.Field{Type: gql.NewNonNull(gql.String)},
			"description": &gql.Field{Type: gql.NewNonNull(gql.String)},
			"image":       &gql.Field{Type: gql.String},
			"largeImage":  &gql.Field{Type: gql.String},
			"price":       &gql.Field{Type: gql.NewNonNull(gql.Int)},
			"user": &gql.Field{
				Type:    gql.NewNonNull(userType),
				Resolve: r.resolveItemOwner,
			},
		},
	})

	aggregateType := gql.NewObject(gql.ObjectConfig{
		Name: "AggregateItem",
		Fields: gql.Fields{
			"count": &gql.Field{Type: gql.NewNonNull(gql.Int)},
		},
	})

	itemConnectionType := gql.NewObject(gql.ObjectConfig{
		Name: "ItemConnection",
		Fields: gql.Fields{
			"aggregate": &gql.Field{Type: gql.NewNonNull(aggregateType)},
		},
	})

	messageType := gql.NewObject(gql.ObjectConfig{
		Name: "SuccessMessage",
		Fields: gql.Fields{
			"message": &gql.Field{Type: gql.String},
		},
	})

	query := gql.NewObject(gql.ObjectConfig{
		Name: "Query",
		Fields: gql.Fields{
			"me": &gql.Field{
				Type:    userType,
				Resolve: r.resolveMe,
			},
			"users": &gql.Field{
				Type:    gql.NewNonNull(gql.NewList(gql.NewNonNull(userType))),
				Resolve: r.resolveUsers,
			},
			"item": &gql.Field{
				Type: itemType,
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
				},
				Resolve: r.resolveItem,
			},
			"items": &gql.Field{
				Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(itemType))),
				Args: gql.FieldConfigArgument{
					"skip":  &gql.ArgumentConfig{Type: gql.Int, DefaultValue: 0},
					"first": &gql.ArgumentConfig{Type: gql.Int, DefaultValue: 0},
				},
				Resolve: r.resolveItems,
			},
			"itemsConnection": &gql.Field{
				Type:    gql.NewNonNull(itemConnectionType),
				Resolve: r.resolveItemsConnection,
			},
		},
	})

	mutation := gql.NewObject(gql.ObjectConfig{
		Name: "Mutation",
		Fields: gql.Fields{
			"signup": &gql.Field{
				Type: gql.NewNonNull(userType),
				Args: gql.FieldConfigArgument{
					"name":     &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"email":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"password": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.resolveSignup,
			},
			"signin": &gql.Field{
				Type: gql.NewNonNull(userType),
				Args: gql.FieldConfigArgument{
					"email":    &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"password": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.resolveSignin,
			},
			"signout": &gql.Field{
				Type:    gql.NewNonNull(messageType),
				Resolve: r.resolveSignout,
			},
			"requestReset": &gql.Field{
				Type: gql.NewNonNull(messageType),
				Args: gql.FieldConfigArgument{
					"email": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.resolveRequestReset,
			},
			"resetPassword": &gql.Field{
				Type: gql.NewNonNull(userType),
				Args: gql.FieldConfigArgument{
					"resetToken":      &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"password":        &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"confirmPassword": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
				},
				Resolve: r.resolveResetPassword,
			},
			"updatePermissions": &gql.Field{
				Type: gql.NewNonNull(userType),
				Args: gql.FieldConfigArgument{
					"userId":      &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"permissions": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.NewList(gql.NewNonNull(permissionEnum)))},
				},
				Resolve: r.resolveUpdatePermissions,
			},
			"createItem": &gql.Field{
				Type: gql.NewNonNull(itemType),
				Args: gql.FieldConfigArgument{
					"title":       &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"description": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.String)},
					"image":       &gql.ArgumentConfig{Type: gql.String},
					"largeImage":  &gql.ArgumentConfig{Type: gql.String},
					"price":       &gql.ArgumentConfig{Type: gql.NewNonNull(gql.Int)},
				},
				Resolve: r.resolveCreateItem,
			},
			"updateItem": &gql.Field{
				Type: gql.NewNonNull(itemType),
				Args: gql.FieldConfigArgument{
					"id":          &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
					"title":       &gql.ArgumentConfig{Type: gql.String},
					"description": &gql.ArgumentConfig{Type: gql.String},
					"image":       &gql.ArgumentConfig{Type: gql.String},
					"largeImage":  &gql.ArgumentConfig{Type: gql.String},
					"price":       &gql.ArgumentConfig{Type: gql.Int},
				},
				Resolve: r.resolveUpdateItem,
			},
			"deleteItem": &gql.Field{
				Type: gql.NewNonNull(itemType),
				Args: gql.FieldConfigArgument{
					"id": &gql.ArgumentConfig{Type: gql.NewNonNull(gql.ID)},
				},
				Resolve: r.resolveDeleteItem,
			},
		},
	})

	return gql.NewSchema(gql.SchemaConfig{Query: query, Mutation: mutation})
}

func permissionValues() gql.EnumValueConfigMap {
	values := gql.EnumValueConfigMap{}
	for _, label := range model.AllPermissions {
		values[label] = &gql.EnumValueConfig{Value: label}
	}
	return values
}
