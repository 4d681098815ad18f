package handlers

import (
	"github.com/gin-gonic/gin"

	"contactbook/internal/middleware"
	"contactbook/internal/store"
)

// Router assembles the full route table. Registration and login are the
// only routes outside the auth gate.
func Router(st store.Stores) *gin.Engine {
	r := gin.Default()

	r.POST("/users", Register(st))
	r.POST("/users/login", Login(st))

	authorized := r.Group("", middleware.Auth(st.Users))
	{
		authorized.GET("/users/current", GetCurrentUser(st))
		authorized.PATCH("/users/current", UpdateCurrentUser(st))
		authorized.DELETE("/users/logout", Logout(st))

		authorized.POST("/contacts", CreateContact(st))
		authorized.GET("/contacts", SearchContacts(st))
		authorized.GET("/contacts/:id", GetContact(st))
		authorized.PUT("/contacts/:id", UpdateContact(st))
		authorized.DELETE("/contacts/:id", DeleteContact(st))

		authorized.POST("/contacts/:id/address", CreateAddress(st))
		authorized.GET("/contacts/:id/address", ListAddresses(st))
		authorized.GET("/contacts/:id/address/:idAddress", GetAddress(st))
		authorized.PUT("/contacts/:id/address/:idAddress", UpdateAddress(st))
		authorized.DELETE("/contacts/:id/address/:idAddress", DeleteAddress(st))
	}

	return r
}
