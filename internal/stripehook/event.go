package stripehook

import "encoding/json"

// Types d'événements Stripe reconnus par le réconciliateur.
const (
	TypeCheckoutCompleted   = "checkout.session.completed"
	TypeSubscriptionDeleted = "customer.subscription.deleted"
)

// Event est l'union fermée des événements webhook après décodage. Les
// identifiants de corrélation restent des chaînes brutes : c'est le
// réconciliateur qui décide quoi faire d'une metadata irrésoluble.
type Event interface {
	eventKind() string
}

// CheckoutCompleted : un paiement de checkout a abouti.
type CheckoutCompleted struct {
	UserID    string
	TierID    string
	SessionID string
	Email     string
}

// SubscriptionDeleted : l'abonnement Stripe d'un client a été résilié.
type SubscriptionDeleted struct {
	UserID string
}

// Unrecognized porte le type brut d'un événement que ce service ne traite
// pas. Il est acquitté sans mutation pour rester compatible avec les types
// futurs du fournisseur.
type Unrecognized struct {
	Type string
}

func (CheckoutCompleted) eventKind() string   { return TypeCheckoutCompleted }
func (SubscriptionDeleted) eventKind() string { return TypeSubscriptionDeleted }
func (e Unrecognized) eventKind() string      { return e.Type }

type envelope struct {
	ID       string            `json:"id"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata"`
	Data     struct {
		Object struct {
			ID              string            `json:"id"`
			Metadata        map[string]string `json:"metadata"`
			CustomerEmail   string            `json:"customer_email"`
			CustomerDetails struct {
				Email string `json:"email"`
			} `json:"customer_details"`
		} `json:"object"`
	} `json:"data"`
}

// DecodeEvent parse un payload déjà authentifié en variante typée.
// À n'appeler qu'APRÈS vérification de la signature.
func DecodeEvent(payload []byte) (Event, error) {
	var env envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return nil, err
	}

	// Stripe place la metadata dans data.object ; les fixtures de la CLI
	// la mettent parfois à la racine. On accepte les deux.
	meta := env.Data.Object.Metadata
	if len(meta) == 0 {
		meta = env.Metadata
	}

	switch env.Type {
	case TypeCheckoutCompleted:
		sessionID := env.Data.Object.ID
		if sessionID == "" {
			sessionID = env.ID
		}
		email := env.Data.Object.CustomerDetails.Email
		if email == "" {
			email = env.Data.Object.CustomerEmail
		}
		return CheckoutCompleted{
			UserID:    meta["userId"],
			TierID:    meta["tierId"],
			SessionID: sessionID,
			Email:     email,
		}, nil
	case TypeSubscriptionDeleted:
		return SubscriptionDeleted{UserID: meta["userId"]}, nil
	default:
		return Unrecognized{Type: env.Type}, nil
	}
}
