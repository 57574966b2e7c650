package gemini

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fatih/color"
)

// DefaultTimeout bounds the whole request, including reading the body.
const DefaultTimeout = 20 * time.Second

type OutcomeKind int

const (
	// OutcomeSuccess is any response with a status below 400.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeHTTPError is a response with an error status (4xx, 5xx).
	OutcomeHTTPError
	// OutcomeFailure is everything where no usable response came back:
	// DNS, connection and timeout errors, or a body that couldn't be read.
	OutcomeFailure
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "OutcomeSuccess"
	case OutcomeHTTPError:
		return "OutcomeHTTPError"
	case OutcomeFailure:
		return "OutcomeFailure"
	default:
		panic("unknown outcome kind")
	}
}

// Outcome is the result of sending one request. Status and Body are set for
// OutcomeSuccess and OutcomeHTTPError; Err is set for OutcomeFailure.
type Outcome struct {
	Kind   OutcomeKind
	Status int
	Body   string
	Err    error
}

// Send performs req with client and classifies the result. It never retries,
// and it doesn't return an error: failures are part of the Outcome.
func Send(client *http.Client, req *http.Request) Outcome {
	resp, err := client.Do(req)
	if err != nil {
		return Outcome{Kind: OutcomeFailure, Err: redactURLError(err)}
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return Outcome{Kind: OutcomeFailure, Err: redactURLError(err)}
	}

	kind := OutcomeSuccess
	if resp.StatusCode >= http.StatusBadRequest {
		kind = OutcomeHTTPError
	}
	return Outcome{Kind: kind, Status: resp.StatusCode, Body: string(b)}
}

var errorLabel = color.New(color.FgRed, color.Bold)

// Report writes o to w in one of three shapes:
//
//	<status>          HTTP error: <status>     Error: <err>
//	<body>            <body>
//
// Labels are colored only when color output is enabled (see
// [color.NoColor]).
func (o Outcome) Report(w io.Writer) error {
	var err error
	switch o.Kind {
	case OutcomeSuccess:
		_, err = fmt.Fprintf(w, "%d\n%s\n", o.Status, o.Body)
	case OutcomeHTTPError:
		_, err = fmt.Fprintf(w, "%s %d\n%s\n", errorLabel.Sprint("HTTP error:"), o.Status, o.Body)
	case OutcomeFailure:
		_, err = fmt.Fprintf(w, "%s %v\n", errorLabel.Sprint("Error:"), o.Err)
	default:
		panic("unknown outcome kind")
	}
	return err
}

// redactURLError drops the query string from the URL that net/http embeds in
// its errors, since that's where the API key is.
func redactURLError(err error) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	if u, perr := url.Parse(uerr.URL); perr == nil {
		u.RawQuery = ""
		uerr.URL = u.String()
	}
	return err
}
