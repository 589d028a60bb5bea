package graphql

import (
	"errors"

	gql "github.com/graphql-go/graphql"

	"github.com/fitstore/fitstore-go/internal/model"
	"github.com/fitstore/fitstore-go/internal/service"
)

func (r *Resolver) resolveItem(p gql.ResolveParams) (interface{}, error) {
	item, err := r.Items.GetItem(p.Context, stringArg(p, "id"))
	if err != nil {
		// The item query mirrors a filter lookup: no match is null, not
		// an error.
		if errors.Is(err, service.ErrItemNotFound) {
			return nil, nil
		}
		return nil, wrapErr(err)
	}
	return item, nil
}

func (r *Resolver) resolveItems(p gql.ResolveParams) (interface{}, error) {
	items, err := r.Items.ListItems(p.Context, intArg(p, "skip"), intArg(p, "first"))
	if err != nil {
		return nil, wrapErr(err)
	}
	return items, nil
}

func (r *Resolver) resolveItemsConnection(p gql.ResolveParams) (interface{}, error) {
	count, err := r.Items.CountItems(p.Context)
	if err != nil {
		return nil, wrapErr(err)
	}
	return map[string]interface{}{
		"aggregate": map[string]interface{}{"count": count},
	}, nil
}

func (r *Resolver) resolveItemOwner(p gql.ResolveParams) (interface{}, error) {
	var ownerID string
	switch item := p.Source.(type) {
	case *model.Item:
		ownerID = item.UserID
	case model.Item:
		ownerID = item.UserID
	default:
		return nil, nil
	}

	user, err := r.Users.GetByID(p.Context, ownerID)
	if err != nil {
		return nil, wrapErr(err)
	}
	return user, nil
}

func (r *Resolver) resolveCreateItem(p gql.ResolveParams) (interface{}, error) {
	item := &model.Item{
		Title:       stringArg(p, "title"),
		Description: stringArg(p, "description"),
		Price:       int64(intArg(p, "price")),
	}
	if image := optionalStringArg(p, "image"); image != nil {
		item.Image = *image
	}
	if largeImage := optionalStringArg(p, "largeImage"); largeImage != nil {
		item.LargeImage = *largeImage
	}

	created, err := r.Items.CreateItem(p.Context, currentUser(p), item)
	if err != nil {
		return nil, wrapErr(err)
	}
	return created, nil
}

func (r *Resolver) resolveUpdateItem(p gql.ResolveParams) (interface{}, error) {
	// Only the mutable fields make it into the update; the id argument
	// addresses the row and is never written.
	upd := model.ItemUpdate{
		Title:       optionalStringArg(p, "title"),
		Description: optionalStringArg(p, "description"),
		Image:       optionalStringArg(p, "image"),
		LargeImage:  optionalStringArg(p, "largeImage"),
		Price:       optionalIntArg(p, "price"),
	}

	item, err := r.Items.UpdateItem(p.Context, currentUser(p), stringArg(p, "id"), upd)
	if err != nil {
		return nil, wrapErr(err)
	}
	return item, nil
}

func (r *Resolver) resolveDeleteItem(p gql.ResolveParams) (interface{}, error) {
	item, err := r.Items.DeleteItem(p.Context, currentUser(p), stringArg(p, "id"))
	if err != nil {
		return nil, wrapErr(err)
	}
	return item, nil
}
