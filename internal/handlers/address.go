package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"contactbook/internal/models"
	"contactbook/internal/store"
)

type addressRequest struct {
	Street     *string `json:"street" binding:"omitempty,max=200"`
	City       *string `json:"city" binding:"omitempty,max=100"`
	Province   *string `json:"province" binding:"omitempty,max=100"`
	Country    string  `json:"country" binding:"required,max=100"`
	PostalCode *string `json:"postal_code" binding:"omitempty,max=10"`
}

// findAddress is the second link of the ownership chain; the contact passed
// in has already been resolved for the calling user.
func findAddress(c *gin.Context, addresses store.AddressStore, contact *models.Contact, addressID int64) (*models.Address, bool) {
	ctx, cancel := requestContext(c)
	defer cancel()

	address, err := addresses.FindByID(ctx, contact.ID, addressID)
	if errors.Is(err, store.ErrNotFound) {
		respondNotFound(c)
		return nil, false
	}
	if err != nil {
		respondInternal(c, "ADDRESS", err)
		return nil, false
	}
	return address, true
}

// CreateAddress resolves the contact before validating the payload: a
// nonexistent or foreign contact is 404 no matter what the body says.
func CreateAddress(st store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		contactID, ok := pathID(c, "id")
		if !ok {
			return
		}
		contact, ok := findContact(c, st.Contacts, user.ID, contactID)
		if !ok {
			return
		}

		var req addressRequest
		if !bindJSON(c, &req) {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		address := &models.Address{
			ContactID:  contact.ID,
			Street:     strVal(req.Street),
			City:       strVal(req.City),
			Province:   strVal(req.Province),
			Country:    req.Country,
			PostalCode: strVal(req.PostalCode),
		}
		if err := st.Addresses.Create(ctx, address); err != nil {
			respondInternal(c, "ADDRESS", err)
			return
		}

		log.Println("[ADDRESS] [INFO] created:", address.ID)
		respondData(c, http.StatusCreated, address)
	}
}

func GetAddress(st store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		contactID, ok := pathID(c, "id")
		if !ok {
			return
		}
		addressID, ok := pathID(c, "idAddress")
		if !ok {
			return
		}
		contact, ok := findContact(c, st.Contacts, user.ID, contactID)
		if !ok {
			return
		}
		address, ok := findAddress(c, st.Addresses, contact, addressID)
		if !ok {
			return
		}
		respondData(c, http.StatusOK, address)
	}
}

func UpdateAddress(st store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		contactID, ok := pathID(c, "id")
		if !ok {
			return
		}
		addressID, ok := pathID(c, "idAddress")
		if !ok {
			return
		}
		contact, ok := findContact(c, st.Contacts, user.ID, contactID)
		if !ok {
			return
		}
		address, ok := findAddress(c, st.Addresses, contact, addressID)
		if !ok {
			return
		}

		var req addressRequest
		if !bindJSON(c, &req) {
			return
		}

		if req.Street != nil {
			address.Street = *req.Street
		}
		if req.City != nil {
			address.City = *req.City
		}
		if req.Province != nil {
			address.Province = *req.Province
		}
		address.Country = req.Country
		if req.PostalCode != nil {
			address.PostalCode = *req.PostalCode
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := st.Addresses.Update(ctx, address); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondNotFound(c)
				return
			}
			respondInternal(c, "ADDRESS", err)
			return
		}

		log.Println("[ADDRESS] [INFO] updated:", address.ID)
		respondData(c, http.StatusOK, address)
	}
}

func DeleteAddress(st store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		contactID, ok := pathID(c, "id")
		if !ok {
			return
		}
		addressID, ok := pathID(c, "idAddress")
		if !ok {
			return
		}
		contact, ok := findContact(c, st.Contacts, user.ID, contactID)
		if !ok {
			return
		}
		address, ok := findAddress(c, st.Addresses, contact, addressID)
		if !ok {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := st.Addresses.Delete(ctx, address); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondNotFound(c)
				return
			}
			respondInternal(c, "ADDRESS", err)
			return
		}

		log.Println("[ADDRESS] [INFO] deleted:", address.ID)
		respondData(c, http.StatusOK, true)
	}
}

func ListAddresses(st store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		contactID, ok := pathID(c, "id")
		if !ok {
			return
		}
		contact, ok := findContact(c, st.Contacts, user.ID, contactID)
		if !ok {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		addresses, err := st.Addresses.ListByContact(ctx, contact.ID)
		if err != nil {
			respondInternal(c, "ADDRESS", err)
			return
		}
		if addresses == nil {
			addresses = []models.Address{}
		}
		respondData(c, http.StatusOK, addresses)
	}
}
