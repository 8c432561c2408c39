package bt

// Blackboard key constants. These are the integration surface between the tree,
// the controller and the surrounding game systems — renaming one breaks the
// contract with every closure that reads it.
const (
	KeyLastUpdateTime   = "LastUpdateTime"
	KeyTreeState        = "TreeState"
	KeyCurrentTask      = "CurrentTask"
	KeyDebugMode        = "DebugMode"
	KeyAIController     = "AIController"
	KeyCurrentGroup     = "CurrentGroup"
	KeyScoutGroup       = "ScoutGroup"
	KeyResourceManager  = "ResourceManager"
	KeyResearchSystem   = "ResearchSystem"
	KeyThreatLevel      = "ThreatLevel"
	KeyAttackTarget     = "AttackTarget"
	KeyEnemyBaseLocated = "EnemyBaseLocated"
	KeyEnemyBasePos     = "EnemyBasePosition"
	KeyGameState        = "GameState"
)
