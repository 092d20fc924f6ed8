package game

import (
	"math/rand"

	"mrogue/internal/actor"
	"mrogue/internal/config"
	"mrogue/internal/factory"
	"mrogue/internal/gamemap"
	"mrogue/internal/generate"
	"mrogue/internal/grid"
	"mrogue/internal/logger"
	"mrogue/internal/system"

	"github.com/sirupsen/logrus"
)

// Input is the player's request for one tick.
type Input struct {
	Dir  grid.Direction
	Wait bool // spend an action without moving
}

// TickReport summarises one call to Sim.Tick.
type TickReport struct {
	Phase      system.Phase // phase after the tick
	Sync       gamemap.SyncResult
	Moves      []system.MoveOutcome
	FOVUpdated bool
}

// Stats are running totals for the run log and the HUD.
type Stats struct {
	Ticks           int
	MovesAccepted   int
	MovesRejected   int
	ChunksSpawned   int
	ChunksDespawned int
	FOVRecomputes   int
	WanderersLost   int
}

// Sim owns the whole simulation state and advances it one tick at a time.
// It is not safe for concurrent use.
type Sim struct {
	cfg      config.Config
	store    *gamemap.Store
	gen      *generate.Generator
	streamer *gamemap.Streamer
	actors   *actor.Table
	sched    *system.Scheduler
	fog      *system.FogOfWar
	rng      *rand.Rand
	player   actor.ID
	populate bool
	stats    Stats
	log      *logrus.Entry
}

// NewSim validates cfg, loads the chunks around the origin and places the
// player on the nearest floor cell.
func NewSim(cfg config.Config) *Sim {
	log := logger.Log.WithField("component", "sim")
	for _, w := range cfg.Validate() {
		log.Warn(w)
	}

	store := gamemap.NewStore(cfg.Chunk.Size)
	gen := generate.NewGenerator(cfg.Chunk.Size, cfg.Seed, cfg.Chunk.ObstacleChance, cfg.TerrainMode())
	s := &Sim{
		cfg:      cfg,
		store:    store,
		gen:      gen,
		streamer: gamemap.NewStreamer(store, gen, cfg.Chunk.SpawnRadius, cfg.Chunk.DespawnRadius),
		actors:   actor.NewTable(),
		sched:    system.NewScheduler(),
		fog:      system.NewFogOfWar(),
		rng:      rand.New(rand.NewSource(int64(cfg.Seed))),
		log:      log,
	}
	s.streamer.OnSpawn = s.populateChunk
	s.streamer.OnDespawn = s.clearChunk

	// Terrain first, then the player, then wanderers, so the player gets
	// the lowest ID and never starts under a wanderer.
	origin := grid.Pos{}
	s.stats.ChunksSpawned += len(s.streamer.Sync(origin).Spawned)
	start, ok := store.NearestWalkable(origin, cfg.Chunk.Size*max(cfg.Chunk.SpawnRadius, 1))
	if !ok {
		log.Warn("no floor near origin, starting on a wall")
		start = origin
	}
	s.player = factory.NewPlayer(s.actors, start, cfg.Player, cfg.TileSize)

	s.populate = true
	for _, cc := range store.Coords() {
		s.populateChunk(store.Get(cc))
	}
	s.stats.ChunksSpawned += len(s.streamer.Sync(start).Spawned)

	log.WithFields(logrus.Fields{
		"seed":    cfg.Seed,
		"terrain": gen.Mode().String(),
		"start":   start,
		"chunks":  store.Len(),
		"actors":  s.actors.Len(),
	}).Info("simulation ready")
	return s
}

// Tick advances the simulation by one step:
//
//  1. stream chunks around the player's cell
//  2. advance moves in transit, landing those that finished
//  3. refresh the player's field of view and fog memory
//  4. let the actors of the current phase act
//  5. evaluate the phase transition
func (s *Sim) Tick(in Input) TickReport {
	var rep TickReport
	s.stats.Ticks++

	if p := s.Player(); p != nil {
		rep.Sync = s.streamer.Sync(p.Move.Current)
		s.stats.ChunksSpawned += len(rep.Sync.Spawned)
		s.stats.ChunksDespawned += len(rep.Sync.Despawned)
		if rep.Sync.Changed() && p.FOV != nil {
			p.FOV.MarkDirty()
		}
	}

	advanceTransit(s.actors, s.cfg.TransitTicks, s.cfg.TileSize)

	if p := s.Player(); p != nil && p.FOV != nil {
		observer := grid.FromWorld(p.Transit.World, s.cfg.TileSize)
		if system.UpdateFOV(p.FOV, s.store, observer) {
			s.fog.Remember(p.FOV.Visible)
			s.stats.FOVRecomputes++
			rep.FOVUpdated = true
		}
	}

	switch s.sched.Phase() {
	case system.PhasePlayer:
		if in.Dir != grid.DirNone || in.Wait {
			dir := in.Dir
			if in.Wait {
				dir = grid.DirNone
			}
			rep.Moves = system.ResolveMoves(s.actors, s.store, []system.Intent{{Actor: s.player, Dir: dir}})
		}
	case system.PhaseEnvironment:
		intents := system.ProcessAI(s.actors, s.store, s.rng)
		rep.Moves = system.ResolveMoves(s.actors, s.store, intents)
	}
	for _, m := range rep.Moves {
		switch m.Result {
		case system.MoveOK:
			s.stats.MovesAccepted++
		case system.MoveBlocked, system.MoveOccupied:
			s.stats.MovesRejected++
		}
	}

	rep.Phase = s.sched.Advance(s.actors)
	return rep
}

// PlayerCanAct reports whether a player input would be used this tick.
func (s *Sim) PlayerCanAct() bool {
	p := s.Player()
	return p != nil && s.sched.Phase() == system.PhasePlayer && p.CanAct()
}

// Player returns the player actor, or nil.
func (s *Sim) Player() *actor.Actor { return s.actors.Get(s.player) }

func (s *Sim) Store() *gamemap.Store { return s.store }
func (s *Sim) Actors() *actor.Table { return s.actors }
func (s *Sim) Fog() *system.FogOfWar { return s.fog }
func (s *Sim) Config() config.Config { return s.cfg }
func (s *Sim) Phase() system.Phase { return s.sched.Phase() }
func (s *Sim) Round() int { return s.sched.Round() }
func (s *Sim) Stats() Stats { return s.stats }
func (s *Sim) Streamer() *gamemap.Streamer { return s.streamer }

// populateChunk places the configured number of wanderers on free floor
// cells of a freshly generated chunk.
func (s *Sim) populateChunk(c *gamemap.Chunk) {
	if !s.populate || c == nil {
		return
	}
	for _, p := range generate.SpawnPoints(c, s.cfg.Chunk.WanderersPerChunk) {
		if s.actors.OccupantOf(p) != nil {
			continue
		}
		factory.NewWanderer(s.actors, p, s.cfg.Wanderer, s.cfg.TileSize)
	}
}

// clearChunk removes the environment actors standing in or moving into a
// chunk that is being unloaded. In fresh terrain mode the fog memory of the
// chunk goes too, since the terrain will differ on return.
func (s *Sim) clearChunk(c *gamemap.Chunk) {
	size := s.store.ChunkSize()
	inChunk := func(p grid.Pos) bool { return gamemap.ChunkOf(p, size) == c.Coord }
	gone := s.actors.Query(func(a *actor.Actor) bool {
		if a.IsPlayer() {
			return false
		}
		return inChunk(a.Move.Current) || (a.Move.Target != nil && inChunk(*a.Move.Target))
	})
	for _, id := range gone {
		s.actors.Despawn(id)
	}
	s.stats.WanderersLost += len(gone)

	if s.gen.Mode() == generate.TerrainFresh {
		s.fog.ForgetChunk(c.Coord, size)
	}
}
