package persona

var firstNames = []string{
	"James", "Mary", "Robert", "Patricia", "John", "Jennifer", "Michael", "Linda",
	"David", "Elizabeth", "William", "Barbara", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Christopher", "Lisa", "Daniel", "Nancy",
	"Matthew", "Betty", "Anthony", "Margaret", "Mark", "Sandra", "Priya", "Ashley",
	"Steven", "Kimberly", "Rahul", "Emily", "Andrew", "Donna", "Joshua", "Michelle",
	"Kevin", "Amanda", "Brian", "Melissa", "Arjun", "Laura", "Ryan", "Ananya",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Hernandez", "Lopez", "Wilson", "Anderson", "Thomas",
	"Taylor", "Moore", "Jackson", "Martin", "Lee", "Thompson", "White", "Harris",
	"Clark", "Lewis", "Robinson", "Walker", "Young", "Allen", "King", "Wright",
	"Scott", "Nguyen", "Hill", "Green", "Adams", "Baker", "Patel", "Sharma", "Kumar",
}

var petNames = []string{
	"Max", "Bella", "Charlie", "Luna", "Lucy", "Cooper", "Daisy", "Milo",
	"Buddy", "Rocky", "Bailey", "Coco", "Oscar", "Molly", "Teddy", "Loki",
	"Simba", "Nala", "Ginger", "Shadow", "Pepper", "Tiger", "Fluffy", "Rex",
	"Sasha", "Bruno", "Zeus", "Oreo", "Biscuit", "Mittens",
}

var teams = []string{
	"Lakers", "Celtics", "Warriors", "Bulls", "Yankees", "Dodgers", "RedSox",
	"Cowboys", "Patriots", "Packers", "Steelers", "Eagles", "Arsenal", "Chelsea",
	"Liverpool", "ManUnited", "Barcelona", "RealMadrid", "Juventus", "Bayern",
	"Mumbai Indians", "Chennai", "Rangers", "Maple Leafs", "Canadiens",
}
