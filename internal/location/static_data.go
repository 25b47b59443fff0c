package location

// Static India dataset: 35 states and union territories with their cities.
// This is the built-in fallback used when the remote location API is not
// available. City lists are unique per state; Uttar Pradesh carries 75+.

var indiaStates = []staticState{
	{Name: "Andhra Pradesh", Code: "AP", Capital: "Amaravati"},
	{Name: "Arunachal Pradesh", Code: "AR", Capital: "Itanagar"},
	{Name: "Assam", Code: "AS", Capital: "Dispur"},
	{Name: "Bihar", Code: "BR", Capital: "Patna"},
	{Name: "Chhattisgarh", Code: "CG", Capital: "Raipur"},
	{Name: "Goa", Code: "GA", Capital: "Panaji"},
	{Name: "Gujarat", Code: "GJ", Capital: "Gandhinagar"},
	{Name: "Haryana", Code: "HR", Capital: "Chandigarh"},
	{Name: "Himachal Pradesh", Code: "HP", Capital: "Shimla"},
	{Name: "Jharkhand", Code: "JH", Capital: "Ranchi"},
	{Name: "Karnataka", Code: "KA", Capital: "Bengaluru"},
	{Name: "Kerala", Code: "KL", Capital: "Thiruvananthapuram"},
	{Name: "Madhya Pradesh", Code: "MP", Capital: "Bhopal"},
	{Name: "Maharashtra", Code: "MH", Capital: "Mumbai"},
	{Name: "Manipur", Code: "MN", Capital: "Imphal"},
	{Name: "Meghalaya", Code: "ML", Capital: "Shillong"},
	{Name: "Mizoram", Code: "MZ", Capital: "Aizawl"},
	{Name: "Nagaland", Code: "NL", Capital: "Kohima"},
	{Name: "Odisha", Code: "OD", Capital: "Bhubaneswar"},
	{Name: "Punjab", Code: "PB", Capital: "Chandigarh"},
	{Name: "Rajasthan", Code: "RJ", Capital: "Jaipur"},
	{Name: "Sikkim", Code: "SK", Capital: "Gangtok"},
	{Name: "Tamil Nadu", Code: "TN", Capital: "Chennai"},
	{Name: "Telangana", Code: "TS", Capital: "Hyderabad"},
	{Name: "Tripura", Code: "TR", Capital: "Agartala"},
	{Name: "Uttar Pradesh", Code: "UP", Capital: "Lucknow"},
	{Name: "Uttarakhand", Code: "UK", Capital: "Dehradun"},
	{Name: "West Bengal", Code: "WB", Capital: "Kolkata"},
	{Name: "Andaman and Nicobar Islands", Code: "AN", Capital: "Port Blair"},
	{Name: "Chandigarh", Code: "CH", Capital: "Chandigarh"},
	{Name: "Dadra and Nagar Haveli and Daman and Diu", Code: "DH", Capital: "Daman"},
	{Name: "Delhi", Code: "DL", Capital: "New Delhi"},
	{Name: "Jammu and Kashmir", Code: "JK", Capital: "Srinagar"},
	{Name: "Lakshadweep", Code: "LD", Capital: "Kavaratti"},
	{Name: "Puducherry", Code: "PY", Capital: "Puducherry"},
}

var indiaCitiesByState = map[string][]string{
	"Andhra Pradesh": {"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Kurnool", "Rajahmundry", "Tirupati", "Kakinada", "Kadapa", "Anantapur", "Eluru", "Nandyal", "Ongole", "Chittoor", "Hindupur", "Machilipatnam", "Adoni", "Tenali", "Chilakaluripet", "Proddatur", "Bhimavaram", "Narasaraopet", "Palakollu", "Srikakulam", "Vizianagaram", "Parvathipuram Manyam", "Alluri Sitharama Raju", "NTR", "Palnadu", "Bapatla", "Prakasam", "Annamayya", "YSR Kadapa", "Sri Sathya Sai"},
	"Arunachal Pradesh": {"Itanagar", "Naharlagun", "Tawang", "Bomdila", "Ziro", "Pasighat", "Tezu", "Roing", "Daporijo", "Along", "Yingkiong", "Anini", "Khonsa", "Changlang", "Miao", "Namsai", "Hayuliang"},
	"Assam": {"Guwahati", "Silchar", "Dibrugarh", "Jorhat", "Nagaon", "Tinsukia", "Tezpur", "Bongaigaon", "Dhubri", "Goalpara", "Barpeta", "Sivasagar", "Karimganj", "Hailakandi", "Cachar", "Dima Hasao", "Karbi Anglong", "Kokrajhar", "Baksa", "Udalguri", "Chirang", "Kamrup", "Kamrup Metropolitan", "Nalbari", "South Salmara-Mankachar", "West Karbi Anglong", "Dhemaji", "Lakhimpur", "Majuli", "Charaideo", "Hojai"},
	"Bihar": {"Patna", "Gaya", "Bhagalpur", "Muzaffarpur", "Darbhanga", "Purnia", "Bihar Sharif", "Arrah", "Begusarai", "Katihar", "Munger", "Chhapra", "Saharsa", "Sasaram", "Hajipur", "Dehri", "Bettiah", "Motihari", "Siwan", "Nawada", "Jamalpur", "Buxar", "Kishanganj", "Sitamarhi", "Jehanabad", "Aurangabad", "Lakhisarai", "Nalanda", "Banka", "Gopalganj", "Vaishali", "Saran", "Samastipur", "Madhubani", "Supaul", "Araria", "Madhepura", "Khagaria", "Sheikhpura", "Bhojpur", "Kaimur", "Rohtas", "Jamui", "East Champaran", "West Champaran", "Sheohar"},
	"Chhattisgarh": {"Raipur", "Bhilai", "Bilaspur", "Korba", "Durg", "Rajnandgaon", "Raigarh", "Jagdalpur", "Ambikapur", "Dhamtari", "Mahasamund", "Kanker", "Kawardha", "Janjgir-Champa", "Mungeli", "Balod", "Bemetara", "Baloda Bazar", "Balrampur", "Bastar", "Bijapur", "Dantewada", "Gariaband", "Jashpur", "Kabirdham", "Kondagaon", "Koriya", "Narayanpur", "Sukma", "Surajpur", "Surguja"},
	"Goa": {"Panaji", "Margao", "Vasco da Gama", "Mapusa", "Ponda", "Bicholim", "Curchorem", "Canacona", "Sanguem", "Valpoi", "Quepem", "Pernem"},
	"Gujarat": {"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar", "Jamnagar", "Gandhinagar", "Junagadh", "Gandhidham", "Anand", "Navsari", "Morbi", "Nadiad", "Surendranagar", "Bharuch", "Mehsana", "Bhuj", "Porbandar", "Palanpur", "Valsad", "Vapi", "Gondal", "Veraval", "Godhra", "Patan", "Kalol", "Dahej", "Botad", "Amreli", "Modasa"},
	"Haryana": {"Faridabad", "Gurugram", "Panipat", "Ambala", "Yamunanagar", "Rohtak", "Hisar", "Karnal", "Sonipat", "Panchkula", "Sirsa", "Bhiwani", "Bahadurgarh", "Jind", "Thanesar", "Kaithal", "Rewari", "Palwal", "Fatehabad", "Narnaul", "Hansi", "Narwana", "Tohana", "Safidon", "Ellenabad", "Adampur", "Barwala", "Bawal", "Dabwali", "Gharaunda", "Gohana", "Jagadhri", "Jhajjar", "Kalanwali", "Kalka", "Ladwa", "Mandi Dabwali", "Mustafabad", "Pehowa", "Pinjore", "Rania", "Ratia", "Samalkha", "Shahbad", "Sohna", "Taraori"},
	"Himachal Pradesh": {"Shimla", "Dharamshala", "Mandi", "Solan", "Bilaspur", "Chamba", "Hamirpur", "Kangra", "Kinnaur", "Kullu", "Lahaul and Spiti", "Sirmaur", "Una", "Nahan", "Palampur", "Kasauli", "Manali", "Dalhousie", "McLeod Ganj"},
	"Jharkhand": {"Ranchi", "Jamshedpur", "Dhanbad", "Bokaro", "Hazaribagh", "Deoghar", "Giridih", "Dumka", "Chaibasa", "Medininagar", "Ramgarh", "Sahibganj", "Pakur", "Godda", "Chatra", "Koderma", "Gumla", "Lohardaga", "Simdega", "Palamu", "Latehar", "Garhwa"},
	"Karnataka": {"Bengaluru", "Mysuru", "Hubli-Dharwad", "Mangalore", "Belagavi", "Kalaburagi", "Davangere", "Ballari", "Tumakuru", "Shivamogga", "Raichur", "Bijapur", "Hassan", "Udupi", "Bhadravati", "Chitradurga", "Robertson Pet", "Kolar", "Mandya", "Chikmagalur", "Gangawati", "Bagalkot", "Ranebennuru", "Hospet", "Gokak", "Yadgir", "Karwar", "Koppal", "Haveri", "Gadag-Betigeri", "Sirsi", "Chamrajnagar", "Chintamani", "Anekal", "Srinivaspur"},
	"Kerala": {"Thiruvananthapuram", "Kochi", "Kozhikode", "Thrissur", "Kollam", "Alappuzha", "Palakkad", "Kannur", "Kottayam", "Malappuram", "Manjeri", "Thalassery", "Koyilandy", "Kanhangad", "Vatakara", "Neyyattinkara", "Kayamkulam", "Ponnani", "Chalakudy", "Kothamangalam", "Perinthalmanna", "Tirur", "Kodungallur", "Kunnamkulam", "Ottapalam", "Shoranur", "Thiruvalla", "Pathanamthitta", "Adoor", "Mavelikkara", "Chengannur", "Mannar", "Punalur", "Paravur", "Attingal", "Varkala", "Nedumangad", "Kattakada", "Balaramapuram", "Nemom", "Chirayinkeezhu", "Vamanapuram", "Kilimanoor", "Vellanad", "Perumkadavila", "Parassala"},
	"Madhya Pradesh": {"Indore", "Bhopal", "Gwalior", "Jabalpur", "Ujjain", "Sagar", "Ratlam", "Satna", "Rewa", "Murwara", "Singrauli", "Burhanpur", "Khandwa", "Chhindwara", "Guna", "Shivpuri", "Vidisha", "Chhatarpur", "Damoh", "Mandsaur", "Khargone", "Neemuch", "Pithampur", "Itarsi", "Nagda", "Morena", "Bhind", "Datia", "Ashoknagar", "Tikamgarh", "Panna", "Katni", "Narsinghpur", "Seoni", "Mandla", "Dindori", "Anuppur", "Shahdol", "Umaria", "Sidhi", "Betul", "Harda", "Hoshangabad", "Raisen", "Rajgarh", "Shajapur", "Dewas", "Jhabua", "Alirajpur", "Barwani", "Dhar", "Agar Malwa", "Sehore"},
	"Maharashtra": {"Mumbai", "Pune", "Nagpur", "Nashik", "Aurangabad", "Solapur", "Thane", "Kalyan", "Vasai-Virar", "Navi Mumbai", "Sangli", "Kolhapur", "Amravati", "Nanded", "Jalgaon", "Akola", "Latur", "Dhule", "Ahmednagar", "Chandrapur", "Parbhani", "Ichalkaranji", "Jalna", "Bhusawal", "Panvel", "Satara", "Beed", "Yavatmal", "Kamptee", "Gondia", "Barshi", "Achalpur", "Osmanabad", "Nandurbar", "Wardha", "Udgir", "Hinganghat"},
	"Manipur": {"Imphal", "Thoubal", "Bishnupur", "Churachandpur", "Ukhrul", "Senapati", "Tamenglong", "Chandel", "Kangpokpi", "Jiribam", "Kakching", "Kamjong", "Noney", "Pherzawl", "Tengnoupal"},
	"Meghalaya": {"Shillong", "Tura", "Jowai", "Nongpoh", "Nongstoin", "Baghmara", "Williamnagar", "Resubelpara", "Ampati", "Mairang", "Mawkyrwat", "Mawphlang"},
	"Mizoram": {"Aizawl", "Lunglei", "Saiha", "Champhai", "Kolasib", "Serchhip", "Lawngtlai", "Mamit", "Saitual", "Khawzawl", "Hnahthial"},
	"Nagaland": {"Kohima", "Dimapur", "Mokokchung", "Tuensang", "Wokha", "Zunheboto", "Mon", "Phek", "Kiphire", "Longleng", "Peren", "Noklak"},
	"Odisha": {"Bhubaneswar", "Cuttack", "Rourkela", "Berhampur", "Sambalpur", "Puri", "Baleshwar", "Bhadrak", "Baripada", "Balangir", "Jharsuguda", "Bargarh", "Rayagada", "Jeypore", "Bhawanipatna", "Dhenkanal", "Angul", "Talcher", "Barbil", "Kendujhar", "Paradip", "Jagatsinghapur", "Kendrapara", "Balasore", "Mayurbhanj", "Keonjhar", "Sundargarh", "Nuapada", "Kalahandi", "Koraput", "Nabarangpur", "Malkangiri", "Gajapati", "Ganjam", "Kandhamal", "Boudh", "Sonepur"},
	"Punjab": {"Ludhiana", "Amritsar", "Jalandhar", "Patiala", "Bathinda", "Pathankot", "Hoshiarpur", "Batala", "Moga", "Abohar", "Malerkotla", "Khanna", "Phagwara", "Muktsar", "Barnala", "Firozpur", "Kapurthala", "Sangrur", "Faridkot", "Fazilka", "Gurdaspur", "Rupnagar", "Mohali", "Fatehgarh Sahib", "Tarn Taran", "Nawanshahr", "Mansa"},
	"Rajasthan": {"Jaipur", "Jodhpur", "Kota", "Bikaner", "Ajmer", "Udaipur", "Bhilwara", "Alwar", "Bharatpur", "Sri Ganganagar", "Sikar", "Tonk", "Pali", "Chittorgarh", "Hanumangarh", "Beawar", "Kishangarh", "Jhunjhunu", "Baran", "Churu", "Banswara", "Dausa", "Bundi", "Jhalawar", "Nagaur", "Pratapgarh", "Rajsamand", "Sawai Madhopur", "Sirohi", "Dholpur", "Karauli", "Jalore"},
	"Sikkim": {"Gangtok", "Namchi", "Mangan", "Gyalshing", "Singtam", "Rangpo", "Jorethang", "Pakyong"},
	"Tamil Nadu": {"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem", "Tirunelveli", "Erode", "Vellore", "Tuticorin", "Dindigul", "Thanjavur", "Hosur", "Nagercoil", "Kanchipuram", "Karaikudi", "Neyveli", "Cuddalore", "Kumbakonam", "Tiruvannamalai", "Pollachi", "Rajapalayam", "Gudiyatham", "Pudukkottai", "Vaniyambadi", "Ambur", "Nagapattinam", "Tirupathur", "Sivakasi", "Krishnagiri", "Dharmapuri", "Thiruvallur", "Tindivanam", "Villupuram", "Kallakurichi", "Ariyalur", "Perambalur", "Karur", "Namakkal", "Theni", "Tenkasi", "Ramanathapuram", "Sivaganga", "Virudhunagar", "Thoothukudi", "Kanyakumari"},
	"Telangana": {"Hyderabad", "Warangal", "Nizamabad", "Karimnagar", "Ramagundam", "Khammam", "Mahbubnagar", "Nalgonda", "Adilabad", "Siddipet", "Suryapet", "Miryalaguda", "Jagtial", "Narayanpet", "Mancherial", "Kamareddy", "Sangareddy", "Medak", "Medchal-Malkajgiri", "Rangareddy"},
	"Tripura": {"Agartala", "Udaipur", "Dharmanagar", "Kailasahar", "Belonia", "Khowai", "Teliamura", "Ambassa", "Sabroom", "Kamalpur"},
	"Uttar Pradesh": {"Lucknow", "Kanpur", "Ghaziabad", "Agra", "Meerut", "Varanasi", "Allahabad", "Noida", "Bareilly", "Aligarh", "Moradabad", "Saharanpur", "Gorakhpur", "Faizabad", "Jhansi", "Muzaffarnagar", "Mathura", "Rampur", "Shahjahanpur", "Firozabad", "Etawah", "Sitapur", "Budaun", "Pilibhit", "Hapur", "Bulandshahr", "Amroha", "Hardoi", "Fatehpur", "Raebareli", "Orai", "Sultanpur", "Bahraich", "Deoria", "Banda", "Unnao", "Mainpuri", "Lalitpur", "Etah", "Bijnor", "Mirzapur", "Sambhal", "Shamli", "Azamgarh", "Kasganj", "Bhadohi", "Kaushambi", "Farrukhabad", "Kannauj", "Basti", "Gonda", "Siddharthnagar", "Maharajganj", "Ballia", "Jaunpur", "Mau", "Ghazipur", "Chandauli", "Sonbhadra", "Sant Kabir Nagar", "Kushinagar", "Mahoba", "Hamirpur", "Jalaun", "Auraiya", "Kheri", "Pratapgarh", "Ambedkar Nagar", "Ayodhya", "Amethi", "Shravasti", "Chitrakoot", "Barabanki", "Hathras", "Kanpur Dehat", "Gautam Buddha Nagar"},
	"Uttarakhand": {"Dehradun", "Haridwar", "Rishikesh", "Haldwani", "Roorkee", "Kashipur", "Rudrapur", "Kotdwar", "Ramnagar", "Pithoragarh", "Nainital", "Mussoorie", "Almora", "Tehri", "Pauri", "Bageshwar", "Champawat", "Uttarkashi", "Rudraprayag", "Joshimath", "Khatima", "Sitarganj", "Jaspur", "Manglaur", "Laksar", "Vikasnagar", "Doiwala"},
	"West Bengal": {"Kolkata", "Howrah", "Durgapur", "Asansol", "Siliguri", "Bardhaman", "Malda", "Baharampur", "Habra", "Kharagpur", "Shantipur", "Dankuni", "Dhulian", "Ranaghat", "Haldia", "Raiganj", "Krishnanagar", "Nabadwip", "Medinipur", "Jalpaiguri", "Balurghat", "Bankura", "Darjeeling", "Alipurduar", "Purulia", "Jhargram", "Kalimpong"},
	"Andaman and Nicobar Islands": {"Port Blair", "Diglipur", "Mayabunder", "Rangat", "Car Nicobar", "Kamorta", "Katchal", "Nancowry", "Little Andaman"},
	"Chandigarh": {"Chandigarh", "Sector 1", "Sector 17", "Sector 43", "Manimajra"},
	"Dadra and Nagar Haveli and Daman and Diu": {"Daman", "Diu", "Silvassa", "Naroli", "Amli", "Khanvel"},
	"Delhi": {"New Delhi", "North Delhi", "South Delhi", "East Delhi", "West Delhi", "Central Delhi", "North East Delhi", "North West Delhi", "South West Delhi", "Shahdara", "Rohini", "Dwarka", "Pitampura", "Laxmi Nagar", "Karol Bagh", "Connaught Place", "Rajouri Garden", "Janakpuri", "Palam", "Najafgarh"},
	"Jammu and Kashmir": {"Srinagar", "Jammu", "Anantnag", "Baramulla", "Sopore", "Kathua", "Udhampur", "Rajouri", "Poonch", "Doda", "Kishtwar", "Ramban", "Reasi", "Samba", "Ganderbal", "Bandipora", "Kulgam", "Pulwama", "Shopian", "Budgam", "Kupwara", "Leh", "Kargil", "Nubra", "Zanskar", "Drass", "Diskit", "Hemis", "Alchi"},
	"Lakshadweep": {"Kavaratti", "Agatti", "Amini", "Andrott", "Bitra", "Chettat", "Kadmat", "Kalpeni", "Kilthan", "Minicoy"},
	"Puducherry": {"Puducherry", "Karaikal", "Mahe", "Yanam", "Ozhukarai", "Ariyankuppam", "Villianur"},
}
