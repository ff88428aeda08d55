package e2e

import (
	"context"
	"fmt"
	"time"

	"tweet-lab/repositories"

	"github.com/gookit/color"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/mongo"
)

type BaseMongoSuite struct {
	suite.Suite
	Config Config
	Client *mongo.Client
}

// SetupSuite loads the environment configuration and connects once for all scenarios
func (s *BaseMongoSuite) SetupSuite() {
	var err error
	s.Config, err = LoadConfig()
	s.Require().NoError(err)
	if s.Config.MongoURI == "" {
		s.T().Skip("E2E_MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.Client, err = repositories.ConnectMongo(ctx, s.Config.MongoURI)
	s.Require().NoError(err)
}

func (s *BaseMongoSuite) TearDownSuite() {
	if s.Client != nil {
		_ = s.Client.Disconnect(context.Background())
	}
}

// Step prints a colorized header for a scenario step in logs
func (s *BaseMongoSuite) Step(name string) {
	header := fmt.Sprintf("  ====== %s ======", name)
	if s.Config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	s.T().Log(header)
}

// Collection returns a fresh collection dropped when the scenario ends
func (s *BaseMongoSuite) Collection(name string) *mongo.Collection {
	coll := s.Client.Database(s.Config.MongoDatabase).Collection(fmt.Sprintf("%s_%d", name, time.Now().UnixNano()))
	s.T().Cleanup(func() { _ = coll.Drop(context.Background()) })
	return coll
}
