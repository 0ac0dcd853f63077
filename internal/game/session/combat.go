package session

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/OCharnyshevich/overworld/internal/game/entity"
	"github.com/OCharnyshevich/overworld/internal/game/quest"
)

// Player reach and attack pacing.
const (
	ReachRange           = 48.0
	PlayerAttackCooldown = 0.4
)

// halfTile converts between an entity's tile-anchored position and its
// center.
func (s *State) halfTile() mgl64.Vec2 {
	h := float64(s.World.Dimensions().TileSize) / 2
	return mgl64.Vec2{h, h}
}

// Center returns the pixel center of an entity.
func (s *State) Center(e *entity.Entity) mgl64.Vec2 {
	return e.Pos.Add(s.halfTile())
}

func (s *State) stepEnemies(dt float64) {
	half := s.halfTile()
	// Enemies steer by their anchor, so aim them at the player's anchor.
	target := s.Player.Pos.Sub(half)
	walkable := func(p mgl64.Vec2) bool { return s.World.Walkable(p.Add(half)) }

	for _, e := range s.Visible {
		if e.Kind != entity.KindEnemy || !e.Active {
			continue
		}
		dmg := entity.StepEnemy(e, target, s.Player.TotalDefense(), dt, s.rng)
		e.Advance(dt, walkable)
		if dmg > 0 {
			s.Player.TakeDamage(dmg)
			s.message(fmt.Sprintf("The %s hits you for %d.", e.Enemy.Type, dmg))
		}
	}
}

// nearest returns the closest visible entity within ReachRange of the
// player that match accepts.
func (s *State) nearest(match func(*entity.Entity) bool) *entity.Entity {
	var best *entity.Entity
	bestDist := math.Inf(1)
	for _, e := range s.Visible {
		if !match(e) {
			continue
		}
		d := s.Center(e).Sub(s.Player.Pos).Len()
		if d <= ReachRange && d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func (s *State) playerAttack() {
	if s.attackCooldown > 0 {
		return
	}
	s.attackCooldown = PlayerAttackCooldown

	target := s.nearest(func(e *entity.Entity) bool {
		return e.Kind == entity.KindEnemy && e.Active
	})
	if target == nil {
		return
	}
	dmg := max(1, s.Player.TotalAttack())
	if target.TakeDamage(dmg) {
		s.onKill(target)
	}
}

// onKill grants the rewards of a dead enemy.
func (s *State) onKill(e *entity.Entity) {
	en := e.Enemy
	s.Kills++
	s.Player.Gold += en.GoldReward
	s.emit(EventKill, en.Type.String(), en.XPReward)
	s.message(fmt.Sprintf("Defeated %s! +%d xp, +%d gold", en.Type, en.XPReward, en.GoldReward))
	s.log.Info("enemy killed", "type", en.Type, "id", e.ID, "kills", s.Kills)
	s.levelUps(s.Player.GainXP(en.XPReward))
}

func (s *State) interact() {
	if npc := s.nearest(func(e *entity.Entity) bool { return e.Kind == entity.KindNPC }); npc != nil {
		s.startDialog(npc)
		return
	}
	chest := s.nearest(func(e *entity.Entity) bool {
		return e.Kind == entity.KindChest && !e.Chest.Opened
	})
	if chest == nil {
		return
	}
	loot := chest.Open()
	s.Chests++
	for _, id := range loot {
		if left := s.Player.Inventory.AddItem(id, 1); left > 0 {
			s.message(fmt.Sprintf("No room for %s.", id))
			continue
		}
		s.message(fmt.Sprintf("Found %s.", id))
	}
	s.emit(EventChest, chest.ID.String(), len(loot))
	s.log.Debug("chest opened", "id", chest.ID, "items", len(loot))
}

func (s *State) startDialog(npc *entity.Entity) {
	s.Dialog = &DialogSession{
		NPC:     npc.ID,
		Speaker: npc.NPC.Name,
		Lines:   npc.NPC.Dialog,
		QuestID: npc.NPC.QuestID,
	}
	if id := quest.ID(npc.NPC.QuestID); id != "" && s.Quests.Offer(id) {
		s.message(fmt.Sprintf("%s offers: %s", npc.NPC.Name, quest.Lookup(id).Description))
	}
}

// advanceDialog shows the next line. Finishing a quest giver's dialog
// accepts the quest.
func (s *State) advanceDialog() {
	if !s.Dialog.Advance() {
		return
	}
	if id := quest.ID(s.Dialog.QuestID); id != "" && s.Quests.Accept(id) {
		s.message(fmt.Sprintf("Quest accepted: %s", quest.Lookup(id).Title))
	}
	s.Dialog = nil
}
