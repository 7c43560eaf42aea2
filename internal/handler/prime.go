package handler

import (
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/dotpro/tutorial-web/internal/domain"
	"github.com/dotpro/tutorial-web/internal/service"
	"github.com/dotpro/tutorial-web/internal/view"
	"github.com/starfederation/datastar-go/datastar"
)

// HandlePrimeAPI returns the verdict for ?number= as JSON.
// GET /api/prime?number=17
// Response: {"input":17,"isPrime":true,"message":"17 is a prime number."}
func HandlePrimeAPI(w http.ResponseWriter, r *http.Request) {
	n, err := queryInt(r, "number")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, toPrimeVerdictDTO(service.CheckPrime(n)))
}

// HandlePrimePage renders the prime checker. Without ?number= it shows the
// empty state.
func HandlePrimePage(w http.ResponseWriter, r *http.Request) {
	raw := strings.TrimSpace(r.URL.Query().Get("number"))
	if raw == "" {
		respond(w, r, Page{Component: view.PrimePage("", nil)})
		return
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		respond(w, r, Page{
			Status:    http.StatusUnprocessableEntity,
			Component: view.PrimePage(raw, notAnInteger(raw)),
		})
		return
	}

	verdict := service.DescribePrime(n)
	respond(w, r, Page{Component: view.PrimePage(raw, &verdict)})
}

// primeSignals is the datastar signal set bound on the prime page.
// The input may arrive as a JSON number or a string.
type primeSignals struct {
	Number any `json:"number"`
}

// HandlePrimeCheck patches the verdict fragment as the user types.
// GET /prime/check?datastar={"number":"17"}
func HandlePrimeCheck(w http.ResponseWriter, r *http.Request) {
	var signals primeSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var verdict *domain.PrimeVerdict
	raw, n, ok := signalInt(signals.Number)
	switch {
	case raw == "":
	case !ok:
		verdict = notAnInteger(raw)
	default:
		v := service.DescribePrime(n)
		verdict = &v
	}

	sse := datastar.NewSSE(w, r)
	if err := sse.PatchElementTempl(view.PrimeVerdictFragment(verdict)); err != nil {
		slog.Error("patch prime verdict", "error", err)
	}
}

// signalInt interprets a decoded JSON signal as an integer. raw is the
// trimmed textual form, empty when the field was blank or absent.
func signalInt(v any) (raw string, n int, ok bool) {
	switch val := v.(type) {
	case string:
		raw = strings.TrimSpace(val)
		if raw == "" {
			return "", 0, false
		}
		parsed, err := strconv.Atoi(raw)
		return raw, parsed, err == nil
	case float64:
		raw = strconv.FormatFloat(val, 'f', -1, 64)
		// Beyond 2^53 a float64 no longer holds every integer exactly.
		if val != math.Trunc(val) || math.Abs(val) > 1<<53 {
			return raw, 0, false
		}
		return raw, int(val), true
	default:
		return "", 0, false
	}
}

func notAnInteger(raw string) *domain.PrimeVerdict {
	return &domain.PrimeVerdict{Message: fmt.Sprintf("%q is not an integer.", raw)}
}
