package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/devflow/bugtracker/internal/core/domain"
)

const issuesCollection = "issues"

// IssueRepository implements ports.IssueRepository on a MongoDB collection.
type IssueRepository struct {
	coll *mongo.Collection
}

func NewIssueRepository(db *mongo.Database) *IssueRepository {
	return &IssueRepository{coll: db.Collection(issuesCollection)}
}

type issueDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Priority    string             `bson:"priority"`
	Status      string             `bson:"status"`
	ProjectID   string             `bson:"project_id"`
	CreatedBy   string             `bson:"created_by"`
	AssignedTo  string             `bson:"assigned_to,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d issueDoc) toDomain() *domain.Issue {
	return &domain.Issue{
		ID:          d.ID.Hex(),
		Title:       d.Title,
		Description: d.Description,
		Priority:    domain.IssuePriority(d.Priority),
		Status:      domain.IssueStatus(d.Status),
		ProjectID:   d.ProjectID,
		CreatedBy:   d.CreatedBy,
		AssignedTo:  d.AssignedTo,
		CreatedAt:   d.CreatedAt,
	}
}

func (r *IssueRepository) Create(ctx context.Context, issue *domain.Issue) (*domain.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := issueDoc{
		Title:       issue.Title,
		Description: issue.Description,
		Priority:    string(issue.Priority),
		Status:      string(issue.Status),
		ProjectID:   issue.ProjectID,
		CreatedBy:   issue.CreatedBy,
		AssignedTo:  issue.AssignedTo,
		CreatedAt:   issue.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert issue: %w", err)
	}

	created := *issue
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *IssueRepository) FindByID(ctx context.Context, id string) (*domain.Issue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrIssueNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc issueDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIssueNotFound
		}
		return nil, fmt.Errorf("find issue: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *IssueRepository) FindByProject(ctx context.Context, projectID string) ([]*domain.Issue, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"project_id": projectID})
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	defer cur.Close(ctx)

	var out []*domain.Issue
	for cur.Next(ctx) {
		var doc issueDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode issue: %w", err)
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// Update sets only the supplied fields and returns the updated document.
func (r *IssueRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Issue, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrIssueNotFound
	}

	set := bson.M{}
	for k, v := range fields {
		switch k {
		case "title", "description", "status":
			set[k] = v
		case "assignedTo":
			set["assigned_to"] = v
		}
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc issueDoc
	err = r.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrIssueNotFound
		}
		return nil, fmt.Errorf("update issue: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *IssueRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrIssueNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete issue: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrIssueNotFound
	}
	return nil
}

// EnsureIndexes creates the project scope index used by FindByProject.
func (r *IssueRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "project_id", Value: 1}},
	})
	return err
}
