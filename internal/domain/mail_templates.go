package domain

import (
	"bytes"
	"html/template"
)

// Subjects for the three fixed account-status messages.
const (
	SubjectAccepted  = "Felicitaciones su cuenta fue aceptada"
	SubjectPending   = "Su cuenta está pendiente de aprobación"
	SubjectRejection = "Notificacion de rechazo"
)

const logoURL = "https://firebasestorage.googleapis.com/v0/b/tp-clinica-online-5cb54.appspot.com/o/logo.jpeg?alt=media&token=d3b33426-153e-46b2-b521-9f6cf8e10b2f"

// decisionTemplate renders both the accepted and the pending-approval
// bodies; the flag picks the wording and accent color.
var decisionTemplate = template.Must(template.New("decision").Parse(`
<div style="background-color: #f9f9f9; padding: 20px; font-family: 'Roboto', Arial, sans-serif;">
  <link href="https://fonts.googleapis.com/css2?family=Roboto:wght@400;700&display=swap" rel="stylesheet">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border: 1px solid #dddddd; padding: 20px; border-radius: 8px; text-align: center;">
    <img src="{{.LogoURL}}" alt="Logo Sabor Académico" style="width: 100px; margin-bottom: 20px;">
    <h1 style="color: {{if .Accepted}}#4CAF50{{else}}#FFA726{{end}};">
      {{if .Accepted}}¡Felicitaciones!{{else}}¡Cuenta creada!{{end}} {{.Name}}
    </h1>
    <p style="font-size: 18px; color: #333333;">
      {{if .Accepted}}Su cuenta ha sido <strong>aceptada</strong>.{{else}}Su cuenta ha sido creada y está <strong>pendiente de aprobación</strong>.{{end}}
    </p>
    <p style="font-size: 16px; color: #666666;">
      {{if .Accepted}}¡Estamos emocionados de que comiences a usar nuestra plataforma!{{else}}Recibirá un aviso por correo electrónico una vez que se apruebe su cuenta.{{end}}
    </p>
    <hr style="border: none; border-top: 1px solid #eeeeee; margin: 20px 0;">
    <p style="font-size: 16px; color: #333333;">
      Saludos, <br> <strong>Sabor Académico</strong>
    </p>
  </div>
</div>
`))

var rejectionTemplate = template.Must(template.New("rejection").Parse(`
<div style="background-color: #f9f9f9; padding: 20px; font-family: 'Roboto', Arial, sans-serif;">
  <link href="https://fonts.googleapis.com/css2?family=Roboto:wght@400;700&display=swap" rel="stylesheet">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border: 1px solid #dddddd; padding: 20px; border-radius: 8px; text-align: center;">
    <img src="{{.LogoURL}}" alt="Logo Sabor Académico" style="width: 100px; margin-bottom: 20px;">
    <h1 style="color: #E53935;">
      Lo sentimos, {{.Name}}
    </h1>
    <p style="font-size: 18px; color: #333333;">
      Lamentablemente, su cuenta no ha sido <strong>aprobada</strong>.
    </p>
    <p style="font-size: 16px; color: #666666;">
      Tras revisar la información proporcionada, hemos determinado que no cumple con los requisitos necesarios para ser parte de nuestra plataforma en este momento.
    </p>
    <hr style="border: none; border-top: 1px solid #eeeeee; margin: 20px 0;">
    <p style="font-size: 16px; color: #333333;">
      Si tiene alguna pregunta o desea obtener más información, no dude en ponerse en contacto con nosotros.
    </p>
    <p style="font-size: 16px; color: #333333;">
      Saludos cordiales, <br> <strong>Sabor Académico</strong>
    </p>
  </div>
</div>
`))

type mailVars struct {
	Name     string
	Accepted bool
	LogoURL  string
}

// DecisionMessage returns the subject and HTML body for the accepted or
// pending-approval mail, selected by the flag.
func DecisionMessage(accepted bool, name string) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := decisionTemplate.Execute(&buf, mailVars{Name: name, Accepted: accepted, LogoURL: logoURL}); err != nil {
		return "", "", err
	}

	subject = SubjectPending
	if accepted {
		subject = SubjectAccepted
	}
	return subject, buf.String(), nil
}

// RejectionMessage returns the subject and HTML body for the rejection mail.
func RejectionMessage(name string) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := rejectionTemplate.Execute(&buf, mailVars{Name: name, LogoURL: logoURL}); err != nil {
		return "", "", err
	}
	return SubjectRejection, buf.String(), nil
}
