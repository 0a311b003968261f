/*
Package router composes route tables, static file mounts, and middlewares
into the single [http.Handler] an antsy host serves.

# Routes

A [Route] pairs an HTTP method and a path template with an [http.Handler].
Each method has its own table, backed by a [mux.Router].
Templates are matched in the order they were handled,
so of two templates matching the same path, the first one handled wins.

Templates accept literal segments and placeholders;
placeholders are written either "{name}" or ":name".
A leading "/" is optional.

# Static files

A [Mount] serves files from a directory to requests under a path prefix.
Mounts sit in front of the route tables.
A request under a prefix whose file does not exist continues on to the routes.

# Pipeline

[*Router.Build] composes, from the outside in:

	middlewares (in the order used)
	  static file mounts (in the order mounted)
	    route table for the request's method
	      not found handler

Build takes a snapshot; the [*Router] may be discarded afterwards.
*/
package router
