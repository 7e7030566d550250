package hako

import "github.com/rs/zerolog"

// Logger returns the registry's contextual logger.
func (r *Registry) Logger() *zerolog.Logger {
	return &r.logger
}

func componentTypeDict(id ComponentID, s storage) *zerolog.Event {
	return zerolog.Dict().
		Uint32("component_id", uint32(id)).
		Str("component_name", s.componentType().String())
}

// LogEntity logs e together with every attached component and its value.
func (r *Registry) LogEntity(level zerolog.Level, e Entity) {
	m := r.entities.mask(e)
	if m == nil {
		r.logger.Err(entityNotFound(e)).Uint64("entity_id", uint64(e)).Msg("cannot log entity")
		return
	}
	arr := zerolog.Arr()
	for _, id := range m.ids() {
		s := r.components.tables[id]
		v, _ := s.value(e)
		arr = arr.Dict(componentTypeDict(id, s).Interface("value", v))
	}
	r.logger.WithLevel(level).
		Uint64("entity_id", uint64(e)).
		Int("total_components", m.count()).
		Array("components", arr).
		Send()
}

// LogRegistry logs the number of live entities and every component table
// with its row count.
func (r *Registry) LogRegistry(level zerolog.Level) {
	arr := zerolog.Arr()
	for id, s := range r.components.tables {
		arr = arr.Dict(componentTypeDict(ComponentID(id), s).Int("rows", s.len()))
	}
	r.logger.WithLevel(level).
		Int("total_entities", r.EntityCount()).
		Int("total_components", len(r.components.tables)).
		Array("components", arr).
		Send()
}
