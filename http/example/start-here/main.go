/*

start-here provides a toy example use of antsy's host,
focusing on the basics of:

(1) constructing a host listening on a port;
(2) binding routes to handlers, with and without errors;
(3) serving static files ahead of those routes;
(4) and stacking middlewares around everything.
*/
package main

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/xy-planning-network/antsy"
	"github.com/xy-planning-network/antsy/host"
	"github.com/xy-planning-network/antsy/http/req"
)

// Port is where the example listens.
const Port = 8080

var parser = req.NewParser()

type thing struct {
	ID   string `json:"id" schema:"id"`
	Name string `json:"name" schema:"name" validate:"required"`
}

// hello is the simplest handler: it cannot fail.
func hello(_ *antsy.Request, res *antsy.Response) {
	res.Status(http.StatusOK).WriteString("hi")
}

// getThing echoes the placeholder matched in the route's path.
func getThing(r *antsy.Request, res *antsy.Response) error {
	return res.JSON(http.StatusOK, thing{ID: r.Param("id"), Name: r.Query("name")})
}

// createThing parses and validates the request body,
// responding 400 itself when the body is malformed or missing fields.
func createThing(r *antsy.Request, res *antsy.Response) error {
	var t thing
	err := parser.Parse(r, &t)
	switch {
	case errors.Is(err, antsy.ErrBadFormat), errors.Is(err, antsy.ErrNotValid):
		return res.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		return err
	}

	return res.JSON(http.StatusCreated, t)
}

// broken returns an error; the host logs it and responds with a 500.
func broken(_ *antsy.Request, _ *antsy.Response) error {
	return errors.New("broken on purpose")
}

func main() {
	// construct a Host using all defaults but the port.
	h, err := host.Listen(Port)
	if err != nil {
		fmt.Println(err)
		return
	}

	// request IDs, logging, panic recovery and so on wrap every request.
	h.Use(h.Defaults()...)

	// files under ./public win over routes; missing ones fall through to them.
	h.StaticFiles("/static", "public")

	h.Get("/hello", antsy.Action(hello))
	h.Get("/things/:id", antsy.HandlerFunc(getThing))
	h.Post("/things", antsy.HandlerFunc(createThing))
	h.Delete("/things/:id", antsy.Action(func(_ *antsy.Request, res *antsy.Response) {
		res.Status(http.StatusNoContent)
	}))
	h.Get("/broken", antsy.HandlerFunc(broken))

	// start the web server until receiving a signal to stop.
	if err := h.Run(); err != nil {
		fmt.Println(err)
		return
	}
}
