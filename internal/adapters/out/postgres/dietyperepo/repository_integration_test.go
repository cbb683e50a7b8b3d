package dietyperepo_test

import (
	"context"
	"testing"

	"dietrack/internal/adapters/out/postgres/componenttyperepo"
	"dietrack/internal/adapters/out/postgres/dietyperepo"
	"dietrack/internal/adapters/out/postgres/pgtest"
	"dietrack/internal/core/domain/model/componenttype"
	"dietrack/internal/core/domain/model/dietype"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"gorm.io/gorm"
)

type tracker struct{}

func (tracker) TrackAggregate(kernel.UUID, any) {}

type DieTypeRepositoryIntegrationTestSuite struct {
	suite.Suite
	container      *pgcontainer.PostgresContainer
	db             *gorm.DB
	repository     *dietyperepo.GormDieTypeRepository
	mandrel, plate *componenttype.ComponentType
}

func (suite *DieTypeRepositoryIntegrationTestSuite) SetupSuite() {
	container, db, err := pgtest.Start(context.Background())
	suite.container = container
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *DieTypeRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(pgtest.Truncate(suite.db))
	suite.repository = dietyperepo.NewGormDieTypeRepository(suite.db, tracker{})
	suite.mandrel = suite.addComponentType("MANDREL")
	suite.plate = suite.addComponentType("PLATE")
}

func (suite *DieTypeRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DieTypeRepositoryIntegrationTestSuite) addComponentType(code string) *componenttype.ComponentType {
	ct, err := componenttype.NewComponentType(kernel.NewUUID(), code, code)
	suite.Require().NoError(err)
	suite.Require().NoError(componenttyperepo.NewGormComponentTypeRepository(suite.db, tracker{}).Add(context.Background(), ct))
	return ct
}

func (suite *DieTypeRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	dt, err := dietype.NewDieType(kernel.NewUUID(), "hollow", "Hollow die", "porthole")
	suite.Require().NoError(err)
	suite.Require().NoError(dt.AddComponentType(suite.plate.ID()))
	suite.Require().NoError(dt.AddComponentType(suite.mandrel.ID()))
	suite.Require().NoError(suite.repository.Add(ctx, dt))

	loaded, err := suite.repository.Get(ctx, dt.ID())

	suite.Require().NoError(err)
	suite.Equal("HOLLOW", loaded.Code())
	suite.Equal("porthole", loaded.Description())
	suite.True(loaded.IsActive())
	suite.Equal([]kernel.UUID{suite.plate.ID(), suite.mandrel.ID()}, loaded.ComponentTypeIDs())
}

func (suite *DieTypeRepositoryIntegrationTestSuite) TestAdd_DuplicateCode() {
	ctx := context.Background()
	first, err := dietype.NewDieType(kernel.NewUUID(), "SOLID", "Solid die", "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, first))

	second, err := dietype.NewDieType(kernel.NewUUID(), "solid", "Solid again", "")
	suite.Require().NoError(err)
	err = suite.repository.Add(ctx, second)

	suite.Require().ErrorIs(err, errs.ErrDuplicateIdentifier)
}

func (suite *DieTypeRepositoryIntegrationTestSuite) TestUpdate_ReplacesComponentTypes() {
	ctx := context.Background()
	dt, err := dietype.NewDieType(kernel.NewUUID(), "HOLLOW", "Hollow die", "")
	suite.Require().NoError(err)
	suite.Require().NoError(dt.AddComponentType(suite.mandrel.ID()))
	suite.Require().NoError(suite.repository.Add(ctx, dt))

	suite.Require().NoError(dt.RemoveComponentType(suite.mandrel.ID()))
	suite.Require().NoError(dt.AddComponentType(suite.plate.ID()))
	dt.Deactivate()
	suite.Require().NoError(suite.repository.Update(ctx, dt))

	loaded, err := suite.repository.Get(ctx, dt.ID())
	suite.Require().NoError(err)
	suite.False(loaded.IsActive())
	suite.Equal([]kernel.UUID{suite.plate.ID()}, loaded.ComponentTypeIDs())
}

func (suite *DieTypeRepositoryIntegrationTestSuite) TestAdd_UnknownComponentType() {
	dt, err := dietype.NewDieType(kernel.NewUUID(), "HOLLOW", "Hollow die", "")
	suite.Require().NoError(err)
	suite.Require().NoError(dt.AddComponentType(kernel.NewUUID()))

	err = suite.repository.Add(context.Background(), dt)

	suite.Require().ErrorIs(err, errs.ErrValueIsInvalid)
}

func (suite *DieTypeRepositoryIntegrationTestSuite) TestGet_NotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestDieTypeRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DieTypeRepositoryIntegrationTestSuite))
}
