package utils

import (
	"fmt"
	"log"
	"os"

	"beautylab_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// SendOrderPlacedEmail envoie la confirmation de commande à l'acheteur.
// Best-effort : si le SMTP n'est pas configuré on ne fait rien.
func SendOrderPlacedEmail(order models.Order, to string) error {
	host := os.Getenv("SMTP_HOST")
	if host == "" || to == "" {
		return nil
	}

	msg := mail.NewMsg()
	if err := msg.From(os.Getenv("SMTP_FROM")); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Confirmation de votre commande %s", order.ID.Hex()))
	msg.SetBodyString(mail.TypeTextHTML, orderPlacedHTML(order))

	client, err := mail.NewClient(host,
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de confirmation à", to)
	return client.DialAndSend(msg)
}

func orderPlacedHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.OrderItems {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f€</td>
				<td>%.2f€</td>
			</tr>`, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Votre commande est enregistrée</h2>
		<p>Bonjour,</p>
		<p>Nous avons bien reçu votre commande <strong>%s</strong>.</p>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 10px; text-align: left;">Produit</th>
					<th style="padding: 10px; text-align: left;">Quantité</th>
					<th style="padding: 10px; text-align: left;">Prix unitaire</th>
					<th style="padding: 10px; text-align: left;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
		</table>
		<p style="font-size: 18px;"><strong>Total : %.2f€</strong></p>
	</div>
</body>
</html>`, order.ID.Hex(), itemsHTML, order.TotalPrice)
}
