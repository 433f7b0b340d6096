package model

import "github.com/m-mizutani/goerr/v2"

// ErrNoImageFound is raised when a message has neither hostedContents nor an
// <img src> in its markup. The message text is user-visible: it is posted
// verbatim into the thread and returned as the detalle field, so it must
// stay byte-identical to what the triggering workflow expects.
var ErrNoImageFound = goerr.New("No se encontró ninguna imagen (hostedContents ni <img src>).")

// ErrTagResolve marks failures of the image resolution phase (locating or
// fetching the bytes). The orchestrator recovers these into an apology reply
// and ok:false; untagged failures (auth, classification) stay fatal.
var ErrTagResolve = goerr.NewTag("resolve")
