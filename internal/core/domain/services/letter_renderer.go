package services

import (
	"strings"
	"text/template"
	"time"

	"ceaseletter/internal/core/domain/model/letter"
)

// englishLetter and spanishLetter are the two fixed statutory templates for a
// cease-communication request under the Fair Debt Collection Practices Act,
// 15 U.S.C. § 1692c(c). The wording is legal substance: it must not vary
// between renders of the same form.
const englishLetter = `{{.FullName}}
{{.AddressLine1}}
{{if .AddressLine2}}{{.AddressLine2}}
{{end}}{{.City}}, {{.State}} {{.Zip}}

{{.Date}}

{{.CollectorName}}
{{if .CollectorAddress}}{{.CollectorAddress}}
{{end}}
Re: Cease Communication Request

To whom it may concern:

I am writing to formally request that you cease all communication with me regarding any alleged debt or related matter. This request is made pursuant to my rights under the Fair Debt Collection Practices Act (15 U.S.C. § 1692c(c)).

You are hereby instructed to stop contacting me at the following phone number: {{.PhoneNumber}}.

Any further communication should only be made as permitted by law. This letter serves as written notice of my request.

{{if .AccountReference}}Reference number: {{.AccountReference}}

{{end}}Sincerely,

{{.FullName}}`

const spanishLetter = `{{.FullName}}
{{.AddressLine1}}
{{if .AddressLine2}}{{.AddressLine2}}
{{end}}{{.City}}, {{.State}} {{.Zip}}

{{.Date}}

{{.CollectorName}}
{{if .CollectorAddress}}{{.CollectorAddress}}
{{end}}
Asunto: Solicitud de cese de comunicación

A quien corresponda:

Por medio de la presente solicito formalmente que cesen todas las comunicaciones conmigo en relación con cualquier deuda o asunto relacionado. Esta solicitud se realiza conforme a mis derechos bajo la Ley de Prácticas Justas de Cobro de Deudas (15 U.S.C. § 1692c(c)).

Se le instruye que deje de contactarme en el siguiente número telefónico: {{.PhoneNumber}}.

Cualquier comunicación futura solo deberá realizarse según lo permitido por la ley. Esta carta constituye notificación escrita de mi solicitud.

{{if .AccountReference}}Número de referencia: {{.AccountReference}}

{{end}}Atentamente,

{{.FullName}}`

var (
	englishTemplate = template.Must(template.New("letter_en").Parse(englishLetter))
	spanishTemplate = template.Must(template.New("letter_es").Parse(spanishLetter))
)

// letterData is the template input: the validated form plus the date line.
type letterData struct {
	letter.Form
	Date string
}

// LetterRenderer renders the cease-communication letter body from a validated
// intake form. Rendering is deterministic: the same form and clock reading
// always produce byte-identical output. The clock is injected so callers can
// pin rendering to a single well-defined instant, keeping the letter text
// immutable once an order is created around it.
type LetterRenderer struct {
	now func() time.Time
}

// NewLetterRenderer creates a renderer. A nil clock defaults to time.Now.
func NewLetterRenderer(now func() time.Time) LetterRenderer {
	if now == nil {
		now = time.Now
	}
	return LetterRenderer{now: now}
}

// Render produces the letter body for the form, selecting the statutory
// template by the form's language. No validation, no I/O, no randomness.
func (r LetterRenderer) Render(form letter.Form) (string, error) {
	tmpl := englishTemplate
	if form.Language == letter.LanguageES {
		tmpl = spanishTemplate
	}

	data := letterData{
		Form: form,
		Date: formatLetterDate(r.now()),
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(sb.String()), nil
}

// formatLetterDate renders the US short date used on the letter's date line.
func formatLetterDate(t time.Time) string {
	return t.Format("1/2/2006")
}
