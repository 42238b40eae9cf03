package memory

import (
	"context"
	"sync"
	"testing"

	"pet-clinic-types/internal/domain/pets"
	"pet-clinic-types/internal/domain/pettypes"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPetTypeRepo_SaveAssignsSequentialIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewPetTypeRepo()

	cat := pettypes.New("cat")
	dog := pettypes.New("dog")
	require.NoError(t, repo.Save(ctx, &cat))
	require.NoError(t, repo.Save(ctx, &dog))

	id, ok := cat.ID()
	require.True(t, ok)
	assert.Equal(t, 1, id)
	id, _ = dog.ID()
	assert.Equal(t, 2, id)

	got, err := repo.FindByName(ctx, "dog")
	require.NoError(t, err)
	assert.Equal(t, dog, got)
}

func TestPetTypeRepo_UpdateKeepsID(t *testing.T) {
	ctx := context.Background()
	repo := NewPetTypeRepo()

	pt := pettypes.New("hamstr")
	require.NoError(t, repo.Save(ctx, &pt))

	pt.Name = "hamster"
	require.NoError(t, repo.Save(ctx, &pt))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, pettypes.Restore(1, "hamster"), all[0])
}

func TestPetTypeRepo_UpdateMissingIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := NewPetTypeRepo()

	ghost := pettypes.Restore(99, "ghost")
	require.NoError(t, repo.Save(ctx, &ghost))

	_, err := repo.FindByID(ctx, 99)
	assert.True(t, errors.Is(err, pettypes.ErrNotFound))
}

func TestPetTypeRepo_FindByName_NotFound(t *testing.T) {
	_, err := NewPetTypeRepo().FindByName(context.Background(), "no-existe")

	var nf *pettypes.NotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, pettypes.Kind, nf.Kind)
	assert.Equal(t, "no-existe", nf.Key)
}

func TestPetTypeRepo_DeleteGuardedByPets(t *testing.T) {
	ctx := context.Background()
	repo := NewPetTypeRepo()

	lizard := pettypes.New("lizard")
	require.NoError(t, repo.Save(ctx, &lizard))
	id, _ := lizard.ID()
	repo.AddPet(pets.Pet{ID: 1, Name: "Leo", TypeID: id, OwnerID: 3})

	err := repo.Delete(ctx, lizard)
	var inUse *pettypes.InUseError
	require.True(t, errors.As(err, &inUse))
	assert.Equal(t, 1, inUse.Dependents)

	_, err = repo.FindByID(ctx, id)
	assert.NoError(t, err)
}

func TestPetTypeRepo_DeleteWithoutPets(t *testing.T) {
	ctx := context.Background()
	repo := NewPetTypeRepo()

	bird := pettypes.New("bird")
	require.NoError(t, repo.Save(ctx, &bird))
	require.NoError(t, repo.Delete(ctx, bird))

	id, _ := bird.ID()
	_, err := repo.FindByID(ctx, id)
	assert.True(t, errors.Is(err, pettypes.ErrNotFound))

	assert.True(t, errors.Is(repo.Delete(ctx, pettypes.New("x")), pettypes.ErrTransient))
}

func TestPetTypeRepo_ConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	repo := NewPetTypeRepo()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pt := pettypes.New("snake")
			_ = repo.Save(ctx, &pt)
		}()
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 50)

	seen := map[int]bool{}
	for _, pt := range all {
		id, _ := pt.ID()
		assert.False(t, seen[id], "duplicated id %d", id)
		seen[id] = true
	}
}
