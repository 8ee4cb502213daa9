package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/a-h/templ"

	"github.com/isaacaji/portfolio/internal/contactflow"
	"github.com/isaacaji/portfolio/internal/filter"
	"github.com/isaacaji/portfolio/internal/model"
	"github.com/isaacaji/portfolio/internal/nav"
	"github.com/isaacaji/portfolio/internal/service"
	"github.com/isaacaji/portfolio/internal/view"
)

// PageHandler renders the HTML pages.
type PageHandler struct {
	projectService service.ProjectService
	blogService    service.BlogService
	contactService service.ContactService
	sendTimeout    time.Duration
}

func NewPageHandler(projectService service.ProjectService, blogService service.BlogService, contactService service.ContactService, sendTimeout time.Duration) *PageHandler {
	return &PageHandler{
		projectService: projectService,
		blogService:    blogService,
		contactService: contactService,
		sendTimeout:    sendTimeout,
	}
}

// render writes body inside the site layout. The menu state comes from the
// request's query string.
func render(w http.ResponseWriter, r *http.Request, status int, title string, body templ.Component) {
	page := view.Page{
		Title: title,
		Path:  r.URL.Path,
		Query: r.URL.RawQuery,
		Menu:  nav.MenuFromQuery(r.URL.Query().Get(nav.MenuParam)),
	}
	templ.Handler(view.Layout(page, body),
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				slog.Error("error rendering page", "path", r.URL.Path, "error", err)
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusInternalServerError)
				_ = view.ServerError().Render(r.Context(), w)
			})
		}),
	).ServeHTTP(w, r)
}

// Home handles GET /.
func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	featured, _ := h.projectService.Featured(r.Context())
	recent, _ := h.blogService.Recent(r.Context(), service.RecentPostCount)
	render(w, r, http.StatusOK, "", view.Home(view.HomeData{Featured: featured, Recent: recent}))
}

// About handles GET /about.
func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusOK, "About", view.About())
}

// Projects handles GET /projects?status=.
func (h *PageHandler) Projects(w http.ResponseWriter, r *http.Request) {
	projects, _ := h.projectService.List(r.Context())

	s := filter.Reduce(filter.NewStatusState(), filter.Load(projects))
	s = filter.Reduce(s, filter.Select[*model.Project](r.URL.Query().Get("status")))

	render(w, r, http.StatusOK, "Projects", view.Projects(s))
}

// Blog handles GET /blog?tag=.
func (h *PageHandler) Blog(w http.ResponseWriter, r *http.Request) {
	posts, _ := h.blogService.Published(r.Context())

	s := filter.Reduce(filter.NewTagState(), filter.Load(posts))
	s = filter.Reduce(s, filter.Select[*model.BlogPost](r.URL.Query().Get("tag")))

	render(w, r, http.StatusOK, "Blog", view.Blog(s, filter.Tags(posts)))
}

// Post handles GET /blog/{slug}.
func (h *PageHandler) Post(w http.ResponseWriter, r *http.Request) {
	post, err := h.blogService.BySlug(r.Context(), r.PathValue("slug"))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		render(w, r, http.StatusInternalServerError, "Error", view.ServerError())
		return
	}
	render(w, r, http.StatusOK, post.Title, view.Post(post))
}

// ContactForm handles GET /contact. ?sent=1 shows the success view after a
// redirect; ?reset=1 (the "Send Another Message" link) and the plain path
// show a blank form.
func (h *PageHandler) ContactForm(w http.ResponseWriter, r *http.Request) {
	d := view.ContactData{Submitted: r.URL.Query().Get("sent") == "1"}
	render(w, r, http.StatusOK, "Contact", view.Contact(d))
}

// ContactSubmit handles POST /contact. Success redirects to the success
// view; any failure re-renders the form with the visitor's input intact.
func (h *PageHandler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := r.ParseForm(); err != nil {
		render(w, r, http.StatusBadRequest, "Contact", view.Contact(view.ContactData{}))
		return
	}

	form := contactFormFromValues(r.PostForm)
	flow, err := submitContact(r.Context(), h.contactService, h.sendTimeout, form)
	if err == nil && flow.State() == contactflow.Submitted {
		http.Redirect(w, r, nav.PathFor(nav.Contact)+"?sent=1", http.StatusSeeOther)
		return
	}

	d := view.ContactData{Form: flow.Form(), Failed: flow.Failed()}
	status := http.StatusBadGateway
	var missing *contactflow.MissingFieldsError
	switch {
	case errors.As(err, &missing):
		d.Missing = missing.Fields
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errMessageTooLong):
		d.MessageTooLong = true
		status = http.StatusUnprocessableEntity
	}
	render(w, r, status, "Contact", view.Contact(d))
}

// ContactRateLimited answers a contact POST over the rate limit. The form is
// shown again with the visitor's input and a notice to wait.
func (h *PageHandler) ContactRateLimited(w http.ResponseWriter, r *http.Request, _ time.Duration) {
	d := view.ContactData{RateLimited: true}
	r.Body = http.MaxBytesReader(w, r.Body, maxContactBody)
	if err := r.ParseForm(); err == nil {
		d.Form = contactFormFromValues(r.PostForm)
	}
	render(w, r, http.StatusTooManyRequests, "Contact", view.Contact(d))
}

func contactFormFromValues(v url.Values) model.ContactFormInput {
	var form model.ContactFormInput
	for _, f := range model.ContactFields {
		form = form.With(f, v.Get(string(f)))
	}
	return form
}

// NotFound renders the 404 page for any unmatched path.
func (h *PageHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	render(w, r, http.StatusNotFound, "Not Found", view.NotFound())
}
