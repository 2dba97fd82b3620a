package web

import (
	"fmt"
	"html"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/oopsididitagain335/futurecommon/metrics"
	"github.com/oopsididitagain335/futurecommon/model"
)

const ackPage = `<h2 style="text-align: center; margin-top: 40px;">
  Thank you, %s!
</h2>
<p style="text-align: center;">
  Your application has been sent.
  %s
</p>
<p style="text-align: center;">
  <a href="/">&larr; Back to Home</a>
</p>`

// handleSubmit processes one application form post. The submitter always
// gets a success-style acknowledgment; delivery problems are logged only.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form data", http.StatusBadRequest)
		return
	}

	sub := model.Submission{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Phone:    r.FormValue("phone"),
		DOB:      r.FormValue("dob"),
		Location: r.FormValue("location"),
		Role:     r.FormValue("role"),
		Skills:   r.FormValue("skills"),
		Why:      r.FormValue("why"),
	}
	sub.Normalize()

	decision, err := s.policy.Evaluate(sub.DOB)
	if err != nil {
		// Unparseable date of birth is treated as ineligible, never a crash.
		s.log.Warn("malformed date of birth", zap.String("applicant", sub.Name), zap.Error(err))
	}

	appID := uuid.NewString()
	metrics.SubmissionsReceived.WithLabelValues(strconv.FormatBool(decision.Eligible)).Inc()

	if decision.Eligible {
		if err := s.notifier.Notify(sub, appID, decision); err != nil {
			metrics.NotifyFailures.Inc()
			s.log.Error("deliver review notification",
				zap.String("id", appID),
				zap.String("applicant", sub.Name),
				zap.Error(err))
		} else {
			// Registered only after the notification is confirmed sent, so
			// a reviewer can never act on an id that is not in the registry.
			s.registry.Put(model.Application{
				ID:    appID,
				Name:  sub.Name,
				Email: sub.Email,
				Phone: sub.Phone,
				Role:  sub.Role,
			})
		}
	}

	notice := "You'll be contacted if accepted."
	if !decision.Eligible {
		notice = fmt.Sprintf("You must be %d+ as of %s.",
			s.policy.MinAge, s.policy.Reference.Format("Jan 2, 2006"))
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprintf(w, ackPage, html.EscapeString(sub.Name), notice)
}
