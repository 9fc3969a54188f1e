package mapper

type Mapper[T any, D any] struct {
	toDTO    func(T) D
	toDomain func(D) T
}

func New[T any, D any](toDTO func(T) D, toDomain func(D) T) *Mapper[T, D] {
	return &Mapper[T, D]{
		toDTO:    toDTO,
		toDomain: toDomain,
	}
}

func (m *Mapper[T, D]) ToDTO(entity T) D {
	return m.toDTO(entity)
}

func (m *Mapper[T, D]) ToDomain(dto D) T {
	return m.toDomain(dto)
}

func (m *Mapper[T, D]) ToDTOList(entities []T) []D {
	if entities == nil {
		return nil
	}

	dtos := make([]D, 0, len(entities))
	for _, entity := range entities {
		dtos = append(dtos, m.toDTO(entity))
	}
	return dtos
}

// MapSlice applies a mapper function to each element of a slice.
// Returns nil if the input slice is nil.
func MapSlice[T any, R any](items []T, mapFunc func(T) R) []R {
	if items == nil {
		return nil
	}

	result := make([]R, 0, len(items))
	for _, item := range items {
		result = append(result, mapFunc(item))
	}
	return result
}

// MapSlicePtr applies a mapper function to each element of a pointer slice,
// skipping nil inputs. Returns nil if the input slice is nil.
func MapSlicePtr[T any, R any](items []*T, mapFunc func(*T) *R) []*R {
	if items == nil {
		return nil
	}

	result := make([]*R, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		result = append(result, mapFunc(item))
	}
	return result
}
