package utils

import (
	"fmt"
	"log"

	"github.com/wneessen/go-mail"

	"brewhaus_back_end/internal/models"
)

// Mailer envoie les e-mails transactionnels du service.
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	return &Mailer{host: host, port: port, username: username, password: password, from: from}
}

// SendSubscriptionConfirmation confirme l'activation d'un abonnement.
func (m *Mailer) SendSubscriptionConfirmation(to string, tier models.SubscriptionTier) error {
	html := fmt.Sprintf(`
<!DOCTYPE html>
<html>
  <body style="font-family: sans-serif;">
    <h1>☕ Bienvenue chez Brewhaus !</h1>
    <p>Votre abonnement <strong>%s</strong> est actif.</p>
    <p>%dg de café fraîchement torréfié arriveront chez vous chaque mois pour %s€.</p>
  </body>
</html>`, tier.Name, tier.CoffeeAmount, tier.MonthlyAmount)

	return m.send(to, "Votre abonnement Brewhaus est actif", html)
}

func (m *Mailer) send(to, subject, htmlBody string) error {
	msg := mail.NewMsg()

	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(m.username),
		mail.WithPassword(m.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail à", to)
	return client.DialAndSend(msg)
}
