// Package stripehook réconcilie l'état des commandes à partir des
// notifications webhook du fournisseur de paiement. Les livraisons sont
// at-least-once, possiblement réordonnées : chaque transition doit être
// atomique et rejouable sans effet.
package stripehook

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/stripe/stripe-go/v83/webhook"

	"brewhaus_back_end/internal/models"
)

var (
	// ErrSignature : signature absente, malformée ou invalide. Aucune
	// mutation, aucun parsing du corps.
	ErrSignature = errors.New("signature webhook invalide")
	// ErrBadPayload : JSON illisible après une signature valide. Le
	// fournisseur doit relivrer (le message a pu être corrompu).
	ErrBadPayload = errors.New("payload webhook illisible")
)

// OrderStore est la surface minimale du dépôt de commandes utilisée par le
// réconciliateur. Les deux opérations sont atomiques côté stockage.
type OrderStore interface {
	CreateActive(ctx context.Context, userID, tierID int64, stripeSessionID string, orderDate time.Time) (bool, error)
	CancelActiveByUser(ctx context.Context, userID int64) (int64, error)
}

type TierGetter interface {
	GetByID(ctx context.Context, id int64) (*models.SubscriptionTier, error)
}

type ConfirmationMailer interface {
	SendSubscriptionConfirmation(to string, tier models.SubscriptionTier) error
}

// Reconciler transforme les événements webhook en transitions d'état
// locales, déterministes et idempotentes.
type Reconciler struct {
	secret string
	orders OrderStore

	// E-mails de confirmation (optionnels, meilleur effort)
	tiers  TierGetter
	mailer ConfirmationMailer

	now func() time.Time
}

func NewReconciler(secret string, orders OrderStore) *Reconciler {
	return &Reconciler{secret: secret, orders: orders, now: time.Now}
}

// EnableConfirmationEmails active l'envoi d'un e-mail à l'activation d'une
// commande. L'envoi est asynchrone : un échec SMTP ne fait jamais échouer
// le webhook.
func (r *Reconciler) EnableConfirmationEmails(tiers TierGetter, mailer ConfirmationMailer) {
	r.tiers = tiers
	r.mailer = mailer
}

// Process traite une livraison webhook : signature d'abord, parsing ensuite,
// mutation enfin. Un retour nil signifie "acquitté" ; toute erreur indique
// au fournisseur de relivrer.
func (r *Reconciler) Process(ctx context.Context, payload []byte, sigHeader string) error {
	// Étape 1 — Authentification sur le corps brut, avant tout parsing.
	// On ne logge jamais le contenu du payload ici.
	if r.secret == "" {
		log.Println("❌ STRIPE_WEBHOOK_SECRET non configuré — événement rejeté")
		return ErrSignature
	}
	if err := webhook.ValidatePayload(payload, sigHeader, r.secret); err != nil {
		return fmt.Errorf("%w: %v", ErrSignature, err)
	}

	// Étape 2 — Dispatch par type, seulement après vérification.
	event, err := DecodeEvent(payload)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	switch e := event.(type) {
	case CheckoutCompleted:
		return r.applyCheckoutCompleted(ctx, e)
	case SubscriptionDeleted:
		return r.applySubscriptionDeleted(ctx, e)
	case Unrecognized:
		log.Printf("ℹ️ Événement ignoré : %s", e.Type)
		return nil
	}
	return nil
}

func (r *Reconciler) applyCheckoutCompleted(ctx context.Context, e CheckoutCompleted) error {
	userID, errU := strconv.ParseInt(e.UserID, 10, 64)
	tierID, errT := strconv.ParseInt(e.TierID, 10, 64)
	if e.UserID == "" || e.TierID == "" || errU != nil || errT != nil {
		log.Printf("⚠️ Métadonnées incomplètes sur checkout %s — événement acquitté sans commande", e.SessionID)
		return nil
	}

	created, err := r.orders.CreateActive(ctx, userID, tierID, e.SessionID, r.now())
	if err != nil {
		log.Printf("❌ Erreur insertion commande (user %d): %v", userID, err)
		return err
	}
	if !created {
		log.Printf("🔁 Commande déjà enregistrée pour la session %s, on ignore.", e.SessionID)
		return nil
	}

	log.Printf("✅ Commande active créée : user %d, formule %d", userID, tierID)
	r.sendConfirmation(tierID, e.Email)
	return nil
}

func (r *Reconciler) applySubscriptionDeleted(ctx context.Context, e SubscriptionDeleted) error {
	userID, err := strconv.ParseInt(e.UserID, 10, 64)
	if e.UserID == "" || err != nil {
		log.Println("⚠️ Métadonnées incomplètes sur résiliation — événement acquitté")
		return nil
	}

	cancelled, err := r.orders.CancelActiveByUser(ctx, userID)
	if err != nil {
		log.Printf("❌ Erreur annulation commandes (user %d): %v", userID, err)
		return err
	}

	// Zéro ligne annulée est un succès : relivraison ou résiliation sans
	// commande active, dans les deux cas l'état final est le bon.
	log.Printf("✅ %d commande(s) annulée(s) pour user %d", cancelled, userID)
	return nil
}

func (r *Reconciler) sendConfirmation(tierID int64, email string) {
	if r.mailer == nil || r.tiers == nil || email == "" {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		tier, err := r.tiers.GetByID(ctx, tierID)
		if err != nil {
			log.Printf("❌ Formule %d introuvable pour l'e-mail de confirmation : %v", tierID, err)
			return
		}
		if err := r.mailer.SendSubscriptionConfirmation(email, *tier); err != nil {
			log.Println("❌ Erreur envoi e-mail confirmation :", err)
		} else {
			log.Println("📧 E-mail de confirmation envoyé à", email)
		}
	}()
}
