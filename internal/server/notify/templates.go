package notify

import (
	"fmt"

	"github.com/flosch/pongo2/v6"
)

// Message is a rendered email.
type Message struct {
	Subject string
	Text    string
	HTML    string
}

type source struct {
	subject string
	text    string
	html    string
}

var sources = map[Template]source{
	TemplateOTP: {
		subject: `Your TaskHub verification code`,
		text: `{% autoescape off %}Hi {{ name }},

Your verification code is {{ code }}. It expires in {{ expires_in }} minutes.{% endautoescape %}`,
		html: `<p>Hi {{ name }},</p>
<p>Your verification code is <strong>{{ code }}</strong>. It expires in {{ expires_in }} minutes.</p>`,
	},
	TemplatePasswordReset: {
		subject: `Reset your TaskHub password`,
		text: `{% autoescape off %}Hi {{ name }},

Use this link to choose a new password: {{ reset_url }}
The link expires in {{ expires_in }} minutes. If you did not ask for this, ignore this email.{% endautoescape %}`,
		html: `<p>Hi {{ name }},</p>
<p><a href="{{ reset_url }}">Choose a new password</a>. The link expires in {{ expires_in }} minutes.</p>
<p>If you did not ask for this, ignore this email.</p>`,
	},
	TemplateEmailVerification: {
		subject: `Confirm your TaskHub email`,
		text: `{% autoescape off %}Hi {{ name }},

Confirm your email address: {{ verify_url }}
The link expires in {{ expires_in }} hours.{% endautoescape %}`,
		html: `<p>Hi {{ name }},</p>
<p><a href="{{ verify_url }}">Confirm your email address</a>. The link expires in {{ expires_in }} hours.</p>`,
	},
	TemplateProjectInvitation: {
		subject: `{% autoescape off %}{{ inviter_name }} invited you to {{ project_name }}{% endautoescape %}`,
		text: `{% autoescape off %}{{ inviter_name }} invited you to join "{{ project_name }}" on TaskHub.

Accept:  {{ accept_url }}
Decline: {{ decline_url }}

This invitation expires on {{ expires_at }}.{% endautoescape %}`,
		html: `<p>{{ inviter_name }} invited you to join <strong>{{ project_name }}</strong> on TaskHub.</p>
<p><a href="{{ accept_url }}">Accept</a> | <a href="{{ decline_url }}">Decline</a></p>
<p>This invitation expires on {{ expires_at }}.</p>`,
	},
	TemplateProjectAdded: {
		subject: `{% autoescape off %}You were added to {{ project_name }}{% endautoescape %}`,
		text: `{% autoescape off %}Hi {{ name }},

{{ inviter_name }} added you to "{{ project_name }}": {{ project_url }}{% endautoescape %}`,
		html: `<p>Hi {{ name }},</p>
<p>{{ inviter_name }} added you to <a href="{{ project_url }}">{{ project_name }}</a>.</p>`,
	},
}

type compiled struct {
	subject *pongo2.Template
	text    *pongo2.Template
	html    *pongo2.Template
}

// Renderer turns a Template plus data into a Message.
type Renderer struct {
	templates map[Template]compiled
}

// NewRenderer compiles every built-in template.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[Template]compiled, len(sources))}
	for name, src := range sources {
		var c compiled
		var err error
		if c.subject, err = pongo2.FromString(src.subject); err != nil {
			return nil, fmt.Errorf("template %s subject: %w", name, err)
		}
		if c.text, err = pongo2.FromString(src.text); err != nil {
			return nil, fmt.Errorf("template %s text: %w", name, err)
		}
		if c.html, err = pongo2.FromString(src.html); err != nil {
			return nil, fmt.Errorf("template %s html: %w", name, err)
		}
		r.templates[name] = c
	}
	return r, nil
}

// Render executes tpl with data.
func (r *Renderer) Render(tpl Template, data map[string]any) (*Message, error) {
	c, ok := r.templates[tpl]
	if !ok {
		return nil, fmt.Errorf("unknown template %q", tpl)
	}

	ctx := pongo2.Context(data)
	subject, err := c.subject.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("render %s subject: %w", tpl, err)
	}
	text, err := c.text.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("render %s text: %w", tpl, err)
	}
	html, err := c.html.Execute(ctx)
	if err != nil {
		return nil, fmt.Errorf("render %s html: %w", tpl, err)
	}

	return &Message{Subject: subject, Text: text, HTML: html}, nil
}
