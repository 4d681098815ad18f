package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"contactbook/internal/models"
	"contactbook/internal/store"
)

// Optional fields are pointers so an update can tell "omitted" (leave as
// is) apart from "sent empty" (clear it).
type contactRequest struct {
	FirstName string  `json:"first_name" binding:"required,max=100"`
	LastName  *string `json:"last_name" binding:"omitempty,max=100"`
	Email     *string `json:"email" binding:"omitempty,email,max=200"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
}

// findContact resolves a contact through its owner. A contact that exists
// but belongs to another user responds "not found".
func findContact(c *gin.Context, contacts store.ContactStore, userID, contactID int64) (*models.Contact, bool) {
	ctx, cancel := requestContext(c)
	defer cancel()

	contact, err := contacts.FindByID(ctx, userID, contactID)
	if errors.Is(err, store.ErrNotFound) {
		respondNotFound(c)
		return nil, false
	}
	if err != nil {
		respondInternal(c, "CONTACT", err)
		return nil, false
	}
	return contact, true
}

func CreateContact(st store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		var req contactRequest
		if !bindJSON(c, &req) {
			return
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		contact := &models.Contact{
			UserID:    user.ID,
			FirstName: req.FirstName,
			LastName:  strVal(req.LastName),
			Email:     strVal(req.Email),
			Phone:     strVal(req.Phone),
		}
		if err := st.Contacts.Create(ctx, contact); err != nil {
			respondInternal(c, "CONTACT", err)
			return
		}

		log.Println("[CONTACT] [INFO] created:", contact.ID)
		respondData(c, http.StatusCreated, contact)
	}
}

func GetContact(st store.Stores) gin.HandlerFunc {
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
		respondData(c, http.StatusOK, contact)
	}
}

func UpdateContact(st store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}
		contactID, ok := pathID(c, "id")
		if !ok {
			return
		}

		// Resolve before validating, same as the address chain: a foreign or
		// missing contact is 404 no matter what the body says.
		contact, ok := findContact(c, st.Contacts, user.ID, contactID)
		if !ok {
			return
		}

		var req contactRequest
		if !bindJSON(c, &req) {
			return
		}

		contact.FirstName = req.FirstName
		if req.LastName != nil {
			contact.LastName = *req.LastName
		}
		if req.Email != nil {
			contact.Email = *req.Email
		}
		if req.Phone != nil {
			contact.Phone = *req.Phone
		}

		ctx, cancel := requestContext(c)
		defer cancel()

		if err := st.Contacts.Update(ctx, contact); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondNotFound(c)
				return
			}
			respondInternal(c, "CONTACT", err)
			return
		}

		log.Println("[CONTACT] [INFO] updated:", contact.ID)
		respondData(c, http.StatusOK, contact)
	}
}

func DeleteContact(st store.Stores) gin.HandlerFunc {
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

		if err := st.Contacts.Delete(ctx, contact); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				respondNotFound(c)
				return
			}
			respondInternal(c, "CONTACT", err)
			return
		}

		log.Println("[CONTACT] [INFO] deleted:", contact.ID)
		respondData(c, http.StatusOK, true)
	}
}

func SearchContacts(st store.Stores) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := currentUser(c)
		if !ok {
			return
		}

		filter := store.ContactFilter{
			Name:  strings.TrimSpace(c.Query("name")),
			Phone: strings.TrimSpace(c.Query("phone")),
			Email: strings.TrimSpace(c.Query("email")),
		}
		page := parsePageParams(c.Query("page"), c.Query("size"))

		ctx, cancel := requestContext(c)
		defer cancel()

		contacts, total, err := st.Contacts.Search(ctx, user.ID, filter, page)
		if err != nil {
			respondInternal(c, "CONTACT", err)
			return
		}
		if contacts == nil {
			contacts = []models.Contact{}
		}

		lastPage := (total + page.Size - 1) / page.Size
		if lastPage < 1 {
			lastPage = 1
		}

		c.JSON(http.StatusOK, gin.H{
			"data": contacts,
			"pagination": gin.H{
				"total":        total,
				"current_page": page.Number,
				"last_page":    lastPage,
				"per_page":     page.Size,
			},
		})
	}
}
