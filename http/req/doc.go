/*
Package req parses the payloads of an HTTP request into structs.

It supports route placeholders, query parameters and JSON-encoded bodies.
In each case, package req expects to parse payloads into a pointer to a struct.
That struct ought to leverage the appropriate struct tags for performing two tasks.
First, matching keys in the payload to fields on the struct:
"schema" for placeholders and query parameters, "json" for bodies.
Second, for validating the payload's data meets requirements: "validate".

Errors from either task are translated to antsy sentinel errors
so handlers see a consistent interface across encodings:
  - [antsy.ErrBadAny]: the destination is not a pointer to a struct
  - [antsy.ErrBadFormat]: the payload could not be decoded
  - [antsy.ErrNotImplemented]: the destination struct uses unsupported tags or types
  - [antsy.ErrNotValid]: the payload decoded but broke a rule; cf. [ValidationErrors]
*/
package req
