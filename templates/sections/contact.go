package sections

import (
	"donna_landing_go/services"
	"donna_landing_go/services/i18n"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Contact form statuses
const (
	ContactStatusSent   = "sent"
	ContactStatusFailed = "failed"
)

// FormID is the id of the contact form; HTMX swaps the whole form.
const FormID = "contact-form"

// ContactForm is the state of the contact form: submitted values, field
// errors keyed by form field name, and the outcome of the last submission.
type ContactForm struct {
	Name    string
	Email   string
	Message string
	Errors  map[string]string
	Status  string
}

// Contact renders the contact section.
func Contact(v View) g.Node {
	c := v.content()
	return Section(
		ID("contact"),
		Class("section section-alt"),
		Div(
			Class("container container-narrow"),
			heading(v.Page, "contact-heading", c.Headings.Contact),
			Div(Class("contact-card"), Animated(v.Page, "contact-card"), ContactFormNode(v)),
		),
	)
}

// ContactFormNode renders the form itself. It is also the HTMX response of a
// submission.
func ContactFormNode(v View) g.Node {
	f := v.Contact

	var alert g.Node
	switch f.Status {
	case ContactStatusSent:
		alert = Alert("success", v.t("contact.sent"))
	case ContactStatusFailed:
		alert = Alert("error", v.t("contact.failed"))
	}

	return Form(
		ID(FormID),
		Class("contact-form"),
		Method("post"),
		Action("/contact#contact"),
		g.Attr("hx-post", "/contact"),
		g.Attr("hx-target", "this"),
		g.Attr("hx-swap", "outerHTML"),
		g.Attr("novalidate", ""),
		Input(Type("hidden"), Name("_csrf"), Value(v.CSRFToken)),
		alert,
		field(v, "name", "text", f.Name, "100"),
		field(v, "email", "email", f.Email, "254"),
		field(v, "message", "", f.Message, "5000"),
		g.If(v.TurnstileSiteKey != "", Div(Class("cf-turnstile"), g.Attr("data-sitekey", v.TurnstileSiteKey), g.Attr("data-language", v.Lang), g.Attr("data-action", services.TurnstileContactAction))),
		fieldError(f.Errors["captcha"], "captcha"),
		Button(Type("submit"), Class("btn btn-primary btn-lg btn-block"), g.Text(v.t("contact.submit"))),
	)
}

// field renders a labelled input; an empty inputType renders a textarea.
func field(v View, name, inputType, value, maxLen string) g.Node {
	id := "contact-" + name
	msg := v.Contact.Errors[name]
	common := g.Group{
		ID(id),
		Name(name),
		g.Attr("placeholder", v.t("contact."+name+"_placeholder")),
		g.Attr("maxlength", maxLen),
		Required(),
		g.If(msg != "", g.Group{g.Attr("aria-invalid", "true"), g.Attr("aria-describedby", id+"-error")}),
	}

	var control g.Node
	if inputType == "" {
		control = Textarea(Class("form-control"), g.Attr("rows", "5"), common, g.Text(value))
	} else {
		control = Input(Class("form-control"), Type(inputType), Value(value), common)
	}

	return Div(
		Class("form-group"),
		Label(For(id), g.Text(v.t("fields."+name))),
		control,
		fieldError(msg, id),
	)
}

func fieldError(msg, id string) g.Node {
	if msg == "" {
		return nil
	}
	return P(ID(id+"-error"), Class("field-error"), g.Text(msg))
}

// Alert renders a form-level message. kind is success or error.
func Alert(kind, message string) g.Node {
	return Div(Class("form-alert form-alert-"+kind), g.Attr("role", "alert"), g.Text(message))
}

// ErrorAlert renders a translated error message.
func ErrorAlert(lang, key string) g.Node {
	return Alert("error", i18n.Translate(lang, key))
}
