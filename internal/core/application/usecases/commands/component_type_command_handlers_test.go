package commands_test

import (
	"testing"

	"dietrack/internal/core/application/usecases/commands"
	"dietrack/internal/core/domain/model/componenttype"
	"dietrack/internal/core/domain/model/kernel"
	"dietrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateComponentTypeCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateComponentTypeCommand(kernel.NewUUID(), "mandrel", "Mandrel")
	require.NoError(t, err)

	repo := new(MockComponentTypeRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComponentTypeRepository").Return(repo).Once(),
		repo.On("Add", ctx, mock.MatchedBy(func(ct *componenttype.ComponentType) bool {
			return ct.Code() == "MANDREL" && ct.IsActive() && len(ct.BOM()) == 0
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComponentTypeUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewCreateComponentTypeCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateComponentTypeCommandHandler_Handle_MissingName(t *testing.T) {
	cmd, err := commands.NewCreateComponentTypeCommand(kernel.NewUUID(), "mandrel", " ")
	require.NoError(t, err)

	factory := new(MockComponentTypeUoWFactory)
	err = commands.NewCreateComponentTypeCommandHandler(factory).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	factory.AssertNotCalled(t, "Create")
}

func TestAddBOMStepCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	wc := newTestWorkCenter(t, "Lathe")
	ct := newTestComponentType(t, "PLATE", wc.ID(), 1)
	wcID := wc.ID()

	cmd, err := commands.NewAddBOMStepCommand(ct.ID(), 2, "Hardening", &wcID, 90, "vacuum")
	require.NoError(t, err)

	repo := new(MockComponentTypeRepository)
	wcRepo := new(MockWorkCenterRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComponentTypeRepository").Return(repo).Once(),
		repo.On("Get", ctx, ct.ID()).Return(ct, nil).Once(),
		uow.On("WorkCenterRepository").Return(wcRepo).Once(),
		wcRepo.On("Get", ctx, wcID).Return(wc, nil).Once(),
		repo.On("Update", ctx, ct).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComponentTypeUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAddBOMStepCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	bom := ct.BOM()
	require.Len(t, bom, 2)
	assert.Equal(t, "Hardening", bom[1].OperationName())
	uow.AssertExpectations(t)
	wcRepo.AssertExpectations(t)
}

func TestAddBOMStepCommandHandler_Handle_WithoutWorkCenter(t *testing.T) {
	ctx := t.Context()
	ct := newTestComponentType(t, "PLATE", kernel.NewUUID(), 0)

	cmd, err := commands.NewAddBOMStepCommand(ct.ID(), 1, "Inspection", nil, 15, "")
	require.NoError(t, err)

	repo := new(MockComponentTypeRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComponentTypeRepository").Return(repo).Once(),
		repo.On("Get", ctx, ct.ID()).Return(ct, nil).Once(),
		repo.On("Update", ctx, ct).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComponentTypeUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAddBOMStepCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	uow.AssertNotCalled(t, "WorkCenterRepository")
}

func TestAddBOMStepCommandHandler_Handle_DuplicateSequence(t *testing.T) {
	ctx := t.Context()
	wc := newTestWorkCenter(t, "Lathe")
	ct := newTestComponentType(t, "PLATE", wc.ID(), 1)

	cmd, err := commands.NewAddBOMStepCommand(ct.ID(), 1, "Again", nil, 0, "")
	require.NoError(t, err)

	repo := new(MockComponentTypeRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComponentTypeRepository").Return(repo).Once(),
		repo.On("Get", ctx, ct.ID()).Return(ct, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComponentTypeUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAddBOMStepCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrDuplicateIdentifier)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddBOMStepCommandHandler_Handle_UnknownWorkCenter(t *testing.T) {
	ctx := t.Context()
	ct := newTestComponentType(t, "PLATE", kernel.NewUUID(), 0)
	wcID := kernel.NewUUID()

	cmd, err := commands.NewAddBOMStepCommand(ct.ID(), 1, "Turning", &wcID, 10, "")
	require.NoError(t, err)

	repo := new(MockComponentTypeRepository)
	wcRepo := new(MockWorkCenterRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ComponentTypeRepository").Return(repo).Once(),
		repo.On("Get", ctx, ct.ID()).Return(ct, nil).Once(),
		uow.On("WorkCenterRepository").Return(wcRepo).Once(),
		wcRepo.On("Get", ctx, wcID).Return(nil, errs.NewObjectNotFoundError("work center", wcID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockComponentTypeUoWFactory)
	factory.On("Create").Return(uow).Once()

	err = commands.NewAddBOMStepCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Empty(t, ct.BOM())
}

func TestRemoveBOMStepCommandHandler_Handle(t *testing.T) {
	t.Run("should remove an existing step", func(t *testing.T) {
		ctx := t.Context()
		ct := newTestComponentType(t, "PLATE", kernel.NewUUID(), 3)
		cmd, err := commands.NewRemoveBOMStepCommand(ct.ID(), 2)
		require.NoError(t, err)

		repo := new(MockComponentTypeRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ComponentTypeRepository").Return(repo).Once(),
			repo.On("Get", ctx, ct.ID()).Return(ct, nil).Once(),
			repo.On("Update", ctx, ct).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockComponentTypeUoWFactory)
		factory.On("Create").Return(uow).Once()

		err = commands.NewRemoveBOMStepCommandHandler(factory).Handle(ctx, cmd)

		require.NoError(t, err)
		bom := ct.BOM()
		require.Len(t, bom, 2)
		assert.Equal(t, 1, bom[0].SequenceNumber())
		assert.Equal(t, 3, bom[1].SequenceNumber())
	})

	t.Run("should fail for an unknown step", func(t *testing.T) {
		ctx := t.Context()
		ct := newTestComponentType(t, "PLATE", kernel.NewUUID(), 1)
		cmd, err := commands.NewRemoveBOMStepCommand(ct.ID(), 5)
		require.NoError(t, err)

		repo := new(MockComponentTypeRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("ComponentTypeRepository").Return(repo).Once(),
			repo.On("Get", ctx, ct.ID()).Return(ct, nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)
		factory := new(MockComponentTypeUoWFactory)
		factory.On("Create").Return(uow).Once()

		err = commands.NewRemoveBOMStepCommandHandler(factory).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.AssertNotCalled(t, "Commit", ctx)
	})
}
