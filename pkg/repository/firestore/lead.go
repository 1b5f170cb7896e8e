package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/thecontlab/continuity-sim/pkg/domain/model"
	"github.com/thecontlab/continuity-sim/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type leadDocument struct {
	ID              string             `firestore:"id"`
	Industry        string             `firestore:"industry"`
	Revenue         float64            `firestore:"revenue"`
	PrimaryRAR      int64              `firestore:"primary_rar"`
	VolatilityIndex int                `firestore:"volatility_index"`
	RiskVectors     []model.RiskVector `firestore:"risk_vectors"`
	CompanyName     string             `firestore:"company_name"`
	Email           string             `firestore:"email"`
	CreatedAt       time.Time          `firestore:"created_at"`
	UpdatedAt       time.Time          `firestore:"updated_at"`
	FinalizedAt     *time.Time         `firestore:"finalized_at"`
}

func toLeadDocument(lead *model.Lead) *leadDocument {
	return &leadDocument{
		ID:              lead.ID.String(),
		Industry:        lead.Industry,
		Revenue:         lead.Revenue,
		PrimaryRAR:      lead.PrimaryRAR,
		VolatilityIndex: lead.VolatilityIndex,
		RiskVectors:     lead.RiskVectors,
		CompanyName:     lead.CompanyName,
		Email:           lead.Email,
		CreatedAt:       lead.CreatedAt,
		UpdatedAt:       lead.UpdatedAt,
		FinalizedAt:     lead.FinalizedAt,
	}
}

func (d *leadDocument) toModel() *model.Lead {
	return &model.Lead{
		ID:              types.LeadID(d.ID),
		Industry:        d.Industry,
		Revenue:         d.Revenue,
		PrimaryRAR:      d.PrimaryRAR,
		VolatilityIndex: d.VolatilityIndex,
		RiskVectors:     d.RiskVectors,
		CompanyName:     d.CompanyName,
		Email:           d.Email,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		FinalizedAt:     d.FinalizedAt,
	}
}

type leadRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newLeadRepository(client *firestore.Client) *leadRepository {
	return &leadRepository{
		client:           client,
		collectionPrefix: "",
	}
}

func (r *leadRepository) leadsCollection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_leads"
	}
	return "leads"
}

func (r *leadRepository) Create(ctx context.Context, lead *model.Lead) (*model.Lead, error) {
	if err := lead.ID.Validate(); err != nil {
		return nil, goerr.Wrap(err, "lead ID is required for create")
	}

	now := time.Now().UTC()
	stored := *lead
	stored.CreatedAt = now
	stored.UpdatedAt = now

	docRef := r.client.Collection(r.leadsCollection()).Doc(stored.ID.String())
	if _, err := docRef.Create(ctx, toLeadDocument(&stored)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, goerr.Wrap(err, "lead already exists", goerr.V("id", lead.ID))
		}
		return nil, goerr.Wrap(err, "failed to create lead", goerr.V("id", lead.ID))
	}

	return &stored, nil
}

func (r *leadRepository) Get(ctx context.Context, id types.LeadID) (*model.Lead, error) {
	snap, err := r.client.Collection(r.leadsCollection()).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(ErrNotFound, "lead not found", goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get lead", goerr.V("id", id))
	}

	var doc leadDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, goerr.Wrap(err, "failed to decode lead document", goerr.V("id", id))
	}

	return doc.toModel(), nil
}

func (r *leadRepository) Finalize(ctx context.Context, id types.LeadID, companyName, email string) (*model.Lead, error) {
	docRef := r.client.Collection(r.leadsCollection()).Doc(id.String())

	var finalized *model.Lead
	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(docRef)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return goerr.Wrap(ErrNotFound, "lead not found", goerr.V("id", id))
			}
			return goerr.Wrap(err, "failed to get lead")
		}

		var doc leadDocument
		if err := snap.DataTo(&doc); err != nil {
			return goerr.Wrap(err, "failed to decode lead document")
		}

		now := time.Now().UTC()
		doc.CompanyName = companyName
		doc.Email = email
		doc.FinalizedAt = &now
		doc.UpdatedAt = now

		finalized = doc.toModel()
		return tx.Set(docRef, &doc)
	})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to finalize lead", goerr.V("id", id))
	}

	return finalized, nil
}

func (r *leadRepository) List(ctx context.Context) ([]*model.Lead, error) {
	iter := r.client.Collection(r.leadsCollection()).OrderBy("created_at", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var leads []*model.Lead
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate leads")
		}

		var doc leadDocument
		if err := snap.DataTo(&doc); err != nil {
			return nil, goerr.Wrap(err, "failed to decode lead document")
		}
		leads = append(leads, doc.toModel())
	}

	return leads, nil
}
